package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *ScheduleController, calendarController *CalendarController) *http.ServeMux {
	mux := http.NewServeMux()

	// Data
	mux.HandleFunc("GET /employers", scheduleController.ListEmployers)
	mux.HandleFunc("GET /sessions", scheduleController.ListSessions)
	mux.HandleFunc("GET /events", scheduleController.ListEvents)
	mux.HandleFunc("GET /events/week", scheduleController.ListWeekEvents)
	mux.HandleFunc("GET /events/ics", scheduleController.ExportWeekICS)

	// Layout
	mux.HandleFunc("GET /schedule/day", calendarController.DayView)
	mux.HandleFunc("GET /schedule/week", calendarController.WeekView)
	mux.HandleFunc("GET /schedule/timeline", calendarController.Timeline)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
