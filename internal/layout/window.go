package layout

// Window is the visible hour range of the grid. StartHour is inclusive,
// EndHour exclusive for item placement; both are whole hours.
type Window struct {
	StartHour int
	EndHour   int
}

// StartMinute returns the window floor in minutes since midnight.
func (w Window) StartMinute() int { return w.StartHour * 60 }

// EndMinute returns the window ceiling in minutes since midnight.
func (w Window) EndMinute() int { return w.EndHour * 60 }

// ContainsHour reports whether the given wall-clock hour lies within the
// window.
func (w Window) ContainsHour(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// Clamp restricts r to the window for geometry purposes. The second return
// is false when the range lies entirely outside the window and produces no
// visible geometry. Since the window bounds are whole hours, taking
// max/min in minutes reproduces the historical behavior of snapping an
// out-of-window endpoint to the boundary hour's :00. Clamping an already
// clamped range is a no-op.
func (w Window) Clamp(r TimeRange) (TimeRange, bool) {
	if r.End < w.StartMinute() || r.Start >= w.EndMinute() {
		return TimeRange{}, false
	}
	if r.Start < w.StartMinute() {
		r.Start = w.StartMinute()
	}
	if r.End > w.EndMinute() {
		r.End = w.EndMinute()
	}
	return r, true
}
