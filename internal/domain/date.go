package domain

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MondayOfWeek returns the Monday of the week containing t, at midnight in
// t's location.
func MondayOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(d.Weekday()) - 1
	if offset < 0 { // Sunday
		offset = 6
	}
	return d.AddDate(0, 0, -offset)
}

// WeekDates returns the seven dates of the week starting at monday.
func WeekDates(monday time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
