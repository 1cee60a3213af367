package layout

// Geometry is the computed placement of one block: Top/Height in pixels,
// Left/Width in percent of the column width.
type Geometry struct {
	Top    float64
	Height float64
	Left   float64
	Width  float64
}

// Project converts a clamped time range into vertical pixel geometry.
// headerHeight is the column offset above the hourly grid (title header
// plus all-day tray), from Metrics.HeaderHeight.
func Project(r TimeRange, w Window, headerHeight float64, m Metrics) Geometry {
	startFraction := float64(r.Start-w.StartMinute()) / 60
	return Geometry{
		Top:    headerHeight + startFraction*m.HourHeight,
		Height: float64(r.Minutes()) / 60 * m.HourHeight,
	}
}

// GroupSlot returns the horizontal slot of the index-th item in a stacking
// group of the given size. The usable width (100% minus the edge padding
// on both sides) is split evenly, so size×width plus both paddings always
// sums to 100%.
func GroupSlot(size, index int, m Metrics) (left, width float64) {
	width = (100 - m.EventPaddingPct*2) / float64(size)
	left = m.EventPaddingPct + width*float64(index)
	return left, width
}

// ProjectAllDay places the index-th all-day block inside a column's tray:
// fixed-height bands stacked top to bottom in arrival order, full column
// width minus the edge padding.
func ProjectAllDay(index int, m Metrics) Geometry {
	return Geometry{
		Top:    float64(index) * m.AllDayEventHeight,
		Height: m.AllDayEventHeight,
		Left:   m.EventPaddingPct,
		Width:  100 - m.EventPaddingPct*2,
	}
}
