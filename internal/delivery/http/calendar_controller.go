package http

import (
	"log/slog"
	"net/http"
	"time"

	"staffcalendar/internal/delivery/http/helpers"
	"staffcalendar/internal/domain"
)

// CalendarController serves the computed calendar layouts: the day view, the
// week view, and the timeline refresh snapshot.
type CalendarController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
	Now     func() time.Time
}

func NewCalendarController(logger *slog.Logger, svc domain.ScheduleService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// DayView godoc
// @Summary Day schedule layout
// @Description Computes the laid-out day view: one column per employee with positioned session and event blocks, the all-day tray, and the current-time indicator. A missing or malformed date defaults to today.
// @Tags schedule
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} APIResponse "data contains the schedule view"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /schedule/day [get]
func (c *CalendarController) DayView(w http.ResponseWriter, r *http.Request) {
	date := helpers.ParseDateParam(r, "date", c.Now())
	view, err := c.Service.DayView(r.Context(), date)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, view)
}

// WeekView godoc
// @Summary Week schedule layout
// @Description Computes the laid-out week view: one column per weekday Monday through Sunday with positioned event blocks and a shared all-day tray height. start_date is snapped to the Monday of its week.
// @Tags schedule
// @Produce json
// @Param start_date query string false "Any day of the week (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} APIResponse "data contains the schedule view"
// @Failure 500 {object} APIResponse "error.code: internal_error"
// @Router /schedule/week [get]
func (c *CalendarController) WeekView(w http.ResponseWriter, r *http.Request) {
	weekStart := helpers.ParseWeekStartParam(r, "start_date", c.Now())
	view, err := c.Service.WeekView(r.Context(), weekStart)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
		return
	}
	WriteJSONSuccess(w, http.StatusOK, view)
}

// Timeline godoc
// @Summary Current timeline snapshot
// @Description Returns the latest current-time indicator position and the updated extents of open sessions, relative to the most recently rendered view. The snapshot is refreshed by the background ticker.
// @Tags schedule
// @Produce json
// @Success 200 {object} APIResponse "data contains the timeline update"
// @Router /schedule/timeline [get]
func (c *CalendarController) Timeline(w http.ResponseWriter, r *http.Request) {
	WriteJSONSuccess(w, http.StatusOK, c.Service.Timeline())
}
