package helpers

import (
	"net/http"
	"strings"
	"time"

	"staffcalendar/internal/domain"
)

// ParseDateParam reads a YYYY-MM-DD query parameter. A missing or malformed
// value falls back to the given date, so the calendar always renders today
// rather than failing the request.
func ParseDateParam(r *http.Request, name string, fallback time.Time) time.Time {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseInLocation(domain.DateLayout, raw, fallback.Location())
	if err != nil {
		return fallback
	}
	return d
}

// ParseWeekStartParam reads a YYYY-MM-DD query parameter and snaps it to the
// Monday of its week. Missing or malformed values use the week containing
// the fallback date.
func ParseWeekStartParam(r *http.Request, name string, fallback time.Time) time.Time {
	return domain.MondayOfWeek(ParseDateParam(r, name, fallback))
}
