package postgres

import (
	"context"
	"database/sql"
	"time"

	"staffcalendar/internal/domain"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, employer_id, to_char(date, 'YYYY-MM-DD'), COALESCE(start_time, ''), COALESCE(end_time, ''),
		       category, color, is_all_day, COALESCE(title, '')
		FROM events
		WHERE date = $1
		ORDER BY employer_id, start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, date.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows, false)
}

func (r *EventRepository) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.employer_id, to_char(e.date, 'YYYY-MM-DD'), COALESCE(e.start_time, ''), COALESCE(e.end_time, ''),
		       e.category, e.color, e.is_all_day, COALESCE(e.title, ''), emp.name
		FROM events e
		INNER JOIN employers emp ON emp.id = e.employer_id
		WHERE e.date >= $1 AND e.date < $2
		ORDER BY e.date, e.employer_id, e.start_time
	`
	from := weekStart.Format(domain.DateLayout)
	to := weekStart.AddDate(0, 0, 7).Format(domain.DateLayout)
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows, true)
}

func scanEvents(rows *sql.Rows, withEmployerName bool) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		ev := &domain.Event{}
		dest := []any{&ev.ID, &ev.EmployerID, &ev.Date, &ev.StartTime, &ev.EndTime, &ev.Category, &ev.Color, &ev.IsAllDay, &ev.Title}
		if withEmployerName {
			dest = append(dest, &ev.EmployerName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
