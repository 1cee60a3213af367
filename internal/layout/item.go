package layout

// TimeRange is a half-open interval of minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// Overlaps reports whether r and o overlap. The test is half-open:
// touching endpoints do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Minutes returns the duration of the range in minutes.
func (r TimeRange) Minutes() int {
	return r.End - r.Start
}

// Item is one schedule entry prepared for layout: a work session or an
// event, already reduced to a minute range within one column. Open items
// (sessions without a logout) have their End resolved to "now" by the
// caller before layout; Open stays set so ticks can re-extend them.
type Item struct {
	ID        int
	ColumnKey string
	Range     TimeRange
	Open      bool
	AllDay    bool
	Label     string
	Color     string
}
