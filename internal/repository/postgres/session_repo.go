package postgres

import (
	"context"
	"database/sql"
	"time"

	"staffcalendar/internal/domain"
)

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) ListByDate(ctx context.Context, date time.Time) ([]*domain.WorkSession, error) {
	query := `
		SELECT id, employer_id, to_char(date, 'YYYY-MM-DD'), login_time, COALESCE(logout_time, '')
		FROM sessions
		WHERE date = $1
		ORDER BY employer_id, login_time
	`
	rows, err := r.DB.QueryContext(ctx, query, date.Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []*domain.WorkSession
	for rows.Next() {
		sess := &domain.WorkSession{}
		if err := rows.Scan(&sess.ID, &sess.EmployerID, &sess.Date, &sess.LoginTime, &sess.LogoutTime); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
