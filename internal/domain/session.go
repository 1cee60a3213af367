package domain

import (
	"context"
	"time"
)

// WorkSession represents one login/logout interval of an employee.
// Times are "HH:MM" wall-clock strings; an empty LogoutTime means the
// employee is still logged in and the session is treated as open-ended.
// swagger:model WorkSession
type WorkSession struct {
	ID         int    `json:"id"`
	EmployerID int    `json:"employer_id"`
	Date       string `json:"date"`
	LoginTime  string `json:"login_time"`
	LogoutTime string `json:"logout_time"`
}

// NewWorkSession returns a new WorkSession with the given fields.
func NewWorkSession(id, employerID int, date, loginTime, logoutTime string) *WorkSession {
	return &WorkSession{
		ID:         id,
		EmployerID: employerID,
		Date:       date,
		LoginTime:  loginTime,
		LogoutTime: logoutTime,
	}
}

// Active reports whether the session has no recorded logout yet.
func (s *WorkSession) Active() bool {
	return s.LogoutTime == ""
}

// SessionRepository defines the interface for work-session storage
type SessionRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*WorkSession, error)
}
