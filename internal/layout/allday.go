package layout

// Metrics holds the pixel dimensions of the grid. EventPaddingPct is in
// percent of the column width; everything else is pixels.
type Metrics struct {
	HourHeight          float64
	AllDayBaseHeight    float64
	AllDayEventHeight   float64
	AllDayBottomSpacing float64
	DayHeaderHeight     float64
	EventPaddingPct     float64
}

// HeaderHeight is the total vertical offset above the hourly grid: the
// column title header plus the shared all-day tray.
func (m Metrics) HeaderHeight(trayHeight float64) float64 {
	return m.DayHeaderHeight + trayHeight
}

// AllDayHeights is the computed all-day tray sizing for one render pass.
// Every column's tray gets the same SharedHeight so headers and hour rows
// stay aligned across columns.
type AllDayHeights struct {
	PerColumn    map[string]int
	SharedHeight float64
}

// ComputeAllDayHeights counts all-day items per column and sizes the
// shared tray. The tray grows linearly with the largest per-column count
// and never shrinks below the base height, so a view with no all-day items
// still reserves the minimum tray.
func ComputeAllDayHeights(columns []string, items []Item, m Metrics) AllDayHeights {
	perColumn := make(map[string]int, len(columns))
	for _, key := range columns {
		perColumn[key] = 0
	}
	maxCount := 0
	for _, item := range items {
		if !item.AllDay {
			continue
		}
		perColumn[item.ColumnKey]++
		if perColumn[item.ColumnKey] > maxCount {
			maxCount = perColumn[item.ColumnKey]
		}
	}

	height := float64(maxCount)*m.AllDayEventHeight + m.AllDayBottomSpacing
	if height < m.AllDayBaseHeight {
		height = m.AllDayBaseHeight
	}
	return AllDayHeights{PerColumn: perColumn, SharedHeight: height}
}
