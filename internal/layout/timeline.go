package layout

import "time"

// Timeline is the current-time indicator position for one tick. When
// Visible is false the indicator must be suppressed; Top and Label are
// then undefined.
type Timeline struct {
	Visible bool
	Top     float64
	Label   string
}

// ComputeTimeline positions the indicator for the current wall-clock time.
// The indicator is hidden whenever the current hour falls outside the
// visible window.
func ComputeTimeline(now time.Time, w Window, headerHeight float64, m Metrics) Timeline {
	hour, minute := now.Hour(), now.Minute()
	if !w.ContainsHour(hour) {
		return Timeline{}
	}
	fraction := float64(hour-w.StartHour) + float64(minute)/60
	return Timeline{
		Visible: true,
		Top:     headerHeight + fraction*m.HourHeight,
		Label:   FormatClock(hour*60 + minute),
	}
}

// ComputeWeekTimeline positions the indicator for the week view: in
// addition to the hour-window check, the indicator is hidden when today
// does not fall within the displayed week.
func ComputeWeekTimeline(now, weekStart time.Time, w Window, headerHeight float64, m Metrics) Timeline {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monday := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	if today.Before(monday) || !today.Before(monday.AddDate(0, 0, 7)) {
		return Timeline{}
	}
	return ComputeTimeline(now, w, headerHeight, m)
}
