package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"staffcalendar/internal/delivery/http/helpers"
	"staffcalendar/internal/domain"
)

// ScheduleController serves the raw calendar data: employees, work sessions,
// and events, plus the iCalendar export of a week.
type ScheduleController struct {
	Logger   *slog.Logger
	Service  domain.ScheduleService
	Exporter domain.CalendarExporter
	Now      func() time.Time
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService, exporter domain.CalendarExporter) *ScheduleController {
	return &ScheduleController{
		Logger:   logger,
		Service:  svc,
		Exporter: exporter,
		Now:      time.Now,
	}
}

// ListEmployers godoc
// @Summary List employees
// @Description Returns all employees with their department and color. Falls back to a built-in sample set when the data source is empty or unavailable.
// @Tags employers
// @Produce json
// @Success 200 {object} APIResponse "data is an array of employees"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /employers [get]
func (c *ScheduleController) ListEmployers(w http.ResponseWriter, r *http.Request) {
	employees, err := c.Service.ListEmployees(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, employees)
}

// ListSessions godoc
// @Summary List work sessions for a day
// @Description Returns the work sessions of one day. A missing or malformed date defaults to today. Open sessions have an empty logout_time.
// @Tags sessions
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} APIResponse "data is an array of work sessions"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *ScheduleController) ListSessions(w http.ResponseWriter, r *http.Request) {
	date := helpers.ParseDateParam(r, "date", c.Now())
	sessions, err := c.Service.ListSessions(r.Context(), date)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []*domain.WorkSession{}
	}
	WriteJSONSuccess(w, http.StatusOK, sessions)
}

// ListEvents godoc
// @Summary List events for a day
// @Description Returns the events of one day, timed and all-day. A missing or malformed date defaults to today.
// @Tags events
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} APIResponse "data is an array of events"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *ScheduleController) ListEvents(w http.ResponseWriter, r *http.Request) {
	date := helpers.ParseDateParam(r, "date", c.Now())
	events, err := c.Service.ListEvents(r.Context(), date)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	WriteJSONSuccess(w, http.StatusOK, events)
}

// ListWeekEvents godoc
// @Summary List events for a week
// @Description Returns the events of the 7-day week containing start_date, with employer names resolved. start_date is snapped to the Monday of its week; missing or malformed values default to the current week.
// @Tags events
// @Produce json
// @Param start_date query string false "Any day of the week (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} APIResponse "data is an array of events"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /events/week [get]
func (c *ScheduleController) ListWeekEvents(w http.ResponseWriter, r *http.Request) {
	weekStart := helpers.ParseWeekStartParam(r, "start_date", c.Now())
	events, err := c.Service.ListWeekEvents(r.Context(), weekStart)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	WriteJSONSuccess(w, http.StatusOK, events)
}

// ExportWeekICS godoc
// @Summary Export a week as iCalendar
// @Description Serializes the events of the week containing start_date into an ics file. start_date is snapped to the Monday of its week.
// @Tags events
// @Produce plain
// @Param start_date query string false "Any day of the week (YYYY-MM-DD, defaults to today)"
// @Success 200 {string} string "iCalendar payload"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /events/ics [get]
func (c *ScheduleController) ExportWeekICS(w http.ResponseWriter, r *http.Request) {
	now := c.Now()
	weekStart := helpers.ParseWeekStartParam(r, "start_date", now)
	events, err := c.Service.ListWeekEvents(r.Context(), weekStart)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	payload, err := c.Exporter.WeekCalendar(events, now)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "ics export failed", "path", r.URL.Path, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	filename := fmt.Sprintf("schedule-%s.ics", weekStart.Format(domain.DateLayout))
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}
