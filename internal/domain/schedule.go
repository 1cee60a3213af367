package domain

import (
	"context"
	"time"
)

// BlockGeometry is the absolute pixel/percent placement of a rendered
// block: Top and Height in pixels from the top of the column, Left and
// Width as percentages of the column width.
type BlockGeometry struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
}

// ScheduleBlock is one timed block (work session or event) positioned in
// the hourly grid. TimeLabel always shows the original, unclamped times;
// an active session shows the "now" sentinel as its end.
type ScheduleBlock struct {
	ID        int           `json:"id"`
	Kind      string        `json:"kind"` // "session" or "event"
	Label     string        `json:"label"`
	TimeLabel string        `json:"time_label"`
	Tooltip   string        `json:"tooltip"`
	Color     string        `json:"color"`
	TextColor string        `json:"text_color"`
	Active    bool          `json:"active"`
	Geometry  BlockGeometry `json:"geometry"`
}

// AllDayBlock is one block stacked inside a column's all-day tray.
type AllDayBlock struct {
	ID        int           `json:"id"`
	Label     string        `json:"label"`
	Tooltip   string        `json:"tooltip"`
	Color     string        `json:"color"`
	TextColor string        `json:"text_color"`
	Geometry  BlockGeometry `json:"geometry"`
}

// ColumnView is one vertical lane of the calendar: an employee in the day
// view, a calendar day in the week view.
type ColumnView struct {
	Key     string          `json:"key"`
	Title   string          `json:"title"`
	IsToday bool            `json:"is_today,omitempty"`
	AllDay  []AllDayBlock   `json:"all_day"`
	Blocks  []ScheduleBlock `json:"blocks"`
}

// TimelineView is the current-time indicator. When Visible is false the
// indicator is suppressed entirely and Top/Label carry no meaning.
type TimelineView struct {
	Visible bool    `json:"visible"`
	Top     float64 `json:"top"`
	Label   string  `json:"label"`
}

// ActiveBlockUpdate refreshes the vertical extent and end label of one
// already-rendered active-session block. Horizontal placement is frozen
// for the render pass and therefore not included.
type ActiveBlockUpdate struct {
	ColumnKey string  `json:"column_key"`
	ID        int     `json:"id"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
	TimeLabel string  `json:"time_label"`
}

// TimelineUpdate is the product of one timeline tick: the repositioned
// indicator plus the refreshed geometry of every active-session block.
type TimelineUpdate struct {
	Timeline TimelineView        `json:"timeline"`
	Active   []ActiveBlockUpdate `json:"active"`
}

// ScheduleView is a fully computed render pass: everything the rendering
// adapter needs to paint the grid without doing any layout math itself.
// swagger:model ScheduleView
type ScheduleView struct {
	Date             string       `json:"date"`
	WeekStart        string       `json:"week_start,omitempty"`
	StartHour        int          `json:"start_hour"`
	EndHour          int          `json:"end_hour"`
	HourHeight       float64      `json:"hour_height"`
	HeaderHeight     float64      `json:"header_height"`
	AllDayTrayHeight float64      `json:"all_day_tray_height"`
	Degraded         bool         `json:"degraded,omitempty"`
	Columns          []ColumnView `json:"columns"`
	Timeline         TimelineView `json:"timeline"`
}

// ScheduleService defines the business logic for loading schedule data and
// computing calendar layout.
type ScheduleService interface {
	// ListEmployees returns all employees, substituting the built-in
	// placeholder set when the data source fails or is empty.
	ListEmployees(ctx context.Context) ([]*Employee, error)
	// ListSessions returns the work sessions of one day.
	ListSessions(ctx context.Context, date time.Time) ([]*WorkSession, error)
	// ListEvents returns the events of one day.
	ListEvents(ctx context.Context, date time.Time) ([]*Event, error)
	// ListWeekEvents returns the events of the 7-day window starting at weekStart.
	ListWeekEvents(ctx context.Context, weekStart time.Time) ([]*Event, error)

	// DayView computes the per-employee day layout for the given date.
	DayView(ctx context.Context, date time.Time) (*ScheduleView, error)
	// WeekView computes the per-day week layout for the week containing weekStart.
	WeekView(ctx context.Context, weekStart time.Time) (*ScheduleView, error)
	// RefreshTimeline recomputes the current-time indicator and active-session
	// extents against the most recent render pass and returns the snapshot.
	RefreshTimeline() TimelineUpdate
	// Timeline returns the latest timeline snapshot without recomputing.
	Timeline() TimelineUpdate
}

// CalendarExporter serializes a set of events into an external calendar
// format (iCalendar).
type CalendarExporter interface {
	WeekCalendar(events []*Event, now time.Time) (string, error)
}
