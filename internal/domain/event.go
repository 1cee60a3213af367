package domain

import (
	"context"
	"time"
)

// Event represents a scheduled calendar entry for an employee: a meeting,
// training, appointment or similar. All-day events carry empty start and
// end times.
// swagger:model Event
type Event struct {
	ID           int    `json:"id"`
	EmployerID   int    `json:"employer_id"`
	EmployerName string `json:"employer_name,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Category     string `json:"category"`
	Color        string `json:"color"`
	IsAllDay     bool   `json:"is_all_day"`
	Title        string `json:"title,omitempty"`
}

// NewEvent returns a new Event with the given fields.
func NewEvent(id, employerID int, date, startTime, endTime, category, color, title string, isAllDay bool) *Event {
	return &Event{
		ID:         id,
		EmployerID: employerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Category:   category,
		Color:      color,
		IsAllDay:   isAllDay,
		Title:      title,
	}
}

// DisplayTitle returns the label painted on the event block. Untitled
// events fall back to their category.
func (e *Event) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Category
}

// EventRepository defines the interface for calendar-event storage
type EventRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*Event, error)
	// ListByWeek returns events within the 7-day window starting at weekStart.
	ListByWeek(ctx context.Context, weekStart time.Time) ([]*Event, error)
}
