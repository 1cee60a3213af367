// Package ics serializes calendar events to iCalendar feeds so the week
// view can be subscribed to from external calendar clients.
package ics

import (
	"fmt"
	"log/slog"
	"time"

	ical "github.com/arran4/golang-ical"

	"staffcalendar/internal/domain"
	"staffcalendar/internal/layout"
)

const productID = "-//staffcalendar//schedule//DE"

type exporter struct {
	logger *slog.Logger
}

// NewExporter returns a CalendarExporter producing iCalendar payloads.
func NewExporter(logger *slog.Logger) domain.CalendarExporter {
	return &exporter{logger: logger}
}

// WeekCalendar serializes events into a VCALENDAR. Records with malformed
// dates or times are logged and skipped so one bad row cannot break the
// whole feed.
func (e *exporter) WeekCalendar(events []*domain.Event, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, ev := range events {
		day, err := time.ParseInLocation(domain.DateLayout, ev.Date, time.Local)
		if err != nil {
			e.logger.Warn("skipping event with malformed date", "event_id", ev.ID, "date", ev.Date)
			continue
		}

		var start, end time.Time
		if !ev.IsAllDay {
			start, err = eventTime(day, ev.StartTime)
			if err != nil {
				e.logger.Warn("skipping event with malformed start time", "event_id", ev.ID, "start_time", ev.StartTime)
				continue
			}
			end, err = eventTime(day, ev.EndTime)
			if err != nil {
				e.logger.Warn("skipping event with malformed end time", "event_id", ev.ID, "end_time", ev.EndTime)
				continue
			}
		}

		ve := cal.AddEvent(fmt.Sprintf("event-%d@staffcalendar", ev.ID))
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.DisplayTitle())
		if ev.EmployerName != "" {
			ve.SetDescription("Mitarbeiter: " + ev.EmployerName)
		}

		if ev.IsAllDay {
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(start)
			ve.SetEndAt(end)
		}
	}

	return cal.Serialize(), nil
}

func eventTime(day time.Time, clock string) (time.Time, error) {
	minutes, err := layout.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}
