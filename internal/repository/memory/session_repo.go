package memory

import (
	"context"
	"time"

	"staffcalendar/internal/domain"
)

type SessionRepository struct {
	now func() time.Time
}

// NewSessionRepository returns the sample session source. nowFn anchors
// the dataset's date; pass nil for time.Now.
func NewSessionRepository(nowFn func() time.Time) domain.SessionRepository {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &SessionRepository{now: nowFn}
}

func (r *SessionRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.WorkSession, error) {
	today := r.now().Format(domain.DateLayout)
	sessions := []*domain.WorkSession{
		domain.NewWorkSession(1, 1, today, "07:30", "12:15"),
		domain.NewWorkSession(2, 1, today, "13:00", ""), // currently logged in
		domain.NewWorkSession(3, 2, today, "06:45", "15:30"),
		domain.NewWorkSession(4, 3, today, "08:00", "11:45"),
		domain.NewWorkSession(5, 3, today, "12:30", "16:00"),
		domain.NewWorkSession(6, 4, today, "09:00", ""), // currently logged in
	}

	requested := date.Format(domain.DateLayout)
	var out []*domain.WorkSession
	for _, s := range sessions {
		if s.Date == requested {
			out = append(out, s)
		}
	}
	return out, nil
}
