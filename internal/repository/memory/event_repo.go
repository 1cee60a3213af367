package memory

import (
	"context"
	"time"

	"staffcalendar/internal/domain"
)

type EventRepository struct {
	now func() time.Time
}

// NewEventRepository returns the sample event source. nowFn anchors the
// dataset's dates; pass nil for time.Now.
func NewEventRepository(nowFn func() time.Time) domain.EventRepository {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &EventRepository{now: nowFn}
}

// dayEvents is the single-day sample set: everything dated today.
func (r *EventRepository) dayEvents() []*domain.Event {
	today := r.now().Format(domain.DateLayout)
	return []*domain.Event{
		domain.NewEvent(1, 1, today, "08:00", "09:30", "meeting", "#4a90e2", "Team Meeting", false),
		domain.NewEvent(2, 1, today, "10:00", "11:00", "appointment", "#e74c3c", "Client Call", false),
		domain.NewEvent(3, 1, today, "14:00", "15:30", "training", "#f39c12", "Training Session", false),
		domain.NewEvent(4, 1, today, "", "", "holiday", "#2ecc71", "Conference", true),
		domain.NewEvent(13, 1, today, "", "", "training", "#e67e22", "Workshop Day", true),
		domain.NewEvent(5, 2, today, "09:00", "10:30", "meeting", "#4a90e2", "Project Review", false),
		domain.NewEvent(6, 2, today, "11:00", "12:00", "appointment", "#e74c3c", "Customer Meeting", false),
		domain.NewEvent(7, 2, today, "11:30", "12:30", "planning", "#9b59b6", "Planning Session", false),
		domain.NewEvent(14, 3, today, "", "", "meeting", "#3498db", "All-Day Meeting", true),
		domain.NewEvent(15, 3, today, "", "", "training", "#9b59b6", "Training", true),
		domain.NewEvent(16, 3, today, "", "", "workshop", "#e74c3c", "Team Building", true),
		domain.NewEvent(8, 3, today, "08:30", "10:00", "workshop", "#1abc9c", "Workshop", false),
		domain.NewEvent(9, 3, today, "13:00", "14:00", "meeting", "#4a90e2", "Status Update", false),
		domain.NewEvent(10, 3, today, "13:15", "14:15", "appointment", "#e74c3c", "One-on-One", false),
		domain.NewEvent(11, 4, today, "", "", "vacation", "#27ae60", "Urlaub", true),
		domain.NewEvent(12, 4, today, "10:00", "11:30", "meeting", "#4a90e2", "Team Sync", false),
	}
}

// weekEvents is the week sample set: events spread over several weekdays,
// each carrying the employee name shown in week-view tooltips.
func (r *EventRepository) weekEvents() []*domain.Event {
	now := r.now()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(domain.DateLayout)
	}
	withName := func(e *domain.Event, name string) *domain.Event {
		e.EmployerName = name
		return e
	}
	return []*domain.Event{
		withName(domain.NewEvent(1, 1, day(0), "08:00", "09:30", "meeting", "#4a90e2", "Team Meeting", false), "Max Mustermann"),
		withName(domain.NewEvent(2, 1, day(0), "10:00", "11:00", "appointment", "#e74c3c", "Client Call", false), "Max Mustermann"),
		withName(domain.NewEvent(3, 1, day(0), "14:00", "15:30", "training", "#f39c12", "Training Session", false), "Max Mustermann"),
		withName(domain.NewEvent(4, 1, day(0), "", "", "holiday", "#2ecc71", "Conference", true), "Max Mustermann"),
		withName(domain.NewEvent(5, 2, day(1), "09:00", "10:30", "meeting", "#4a90e2", "Project Review", false), "Anna Schmidt"),
		withName(domain.NewEvent(6, 2, day(1), "11:00", "12:00", "appointment", "#e74c3c", "Customer Meeting", false), "Anna Schmidt"),
		withName(domain.NewEvent(8, 3, day(2), "08:30", "10:00", "workshop", "#1abc9c", "Workshop", false), "Peter Weber"),
		withName(domain.NewEvent(9, 3, day(2), "13:00", "14:00", "meeting", "#4a90e2", "Status Update", false), "Peter Weber"),
		withName(domain.NewEvent(14, 3, day(3), "", "", "meeting", "#3498db", "All-Day Meeting", true), "Peter Weber"),
		withName(domain.NewEvent(11, 4, day(4), "", "", "vacation", "#27ae60", "Urlaub", true), "Julia Müller"),
		withName(domain.NewEvent(12, 4, day(0), "10:00", "11:30", "meeting", "#4a90e2", "Team Sync", false), "Julia Müller"),
	}
}

func (r *EventRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Event, error) {
	requested := date.Format(domain.DateLayout)
	var out []*domain.Event
	for _, e := range r.dayEvents() {
		if e.Date == requested {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.Event, error) {
	inWeek := make(map[string]bool, 7)
	for _, d := range domain.WeekDates(weekStart) {
		inWeek[d.Format(domain.DateLayout)] = true
	}
	var out []*domain.Event
	for _, e := range r.weekEvents() {
		if inWeek[e.Date] {
			out = append(out, e)
		}
	}
	return out, nil
}
