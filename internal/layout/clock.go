// Package layout implements the calendar placement engine: clock
// arithmetic, visible-window clamping, overlap grouping, all-day tray
// sizing, pixel geometry projection and the current-time indicator.
// It is pure computation with no knowledge of the data source or the
// rendering surface.
package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a wall-clock string that violates the "HH:MM" data
// contract.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q: %s", e.Input, e.Reason)
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
// The hour must be in [0,23] and the minute in [0,59]. The empty string is
// not a parse target: callers treat it as the "absent" sentinel before
// calling ParseClock.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Input: s, Reason: "expected two colon-separated fields"}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "hour is not an integer"}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "minute is not an integer"}
	}
	if hour < 0 || hour > 23 {
		return 0, &ParseError{Input: s, Reason: "hour out of range"}
	}
	if minute < 0 || minute > 59 {
		return 0, &ParseError{Input: s, Reason: "minute out of range"}
	}
	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight to a zero-padded 24-hour
// "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
