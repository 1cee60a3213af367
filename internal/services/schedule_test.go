package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"staffcalendar/internal/domain"
	"staffcalendar/internal/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository for tests.
type fakeEmployeeRepo struct {
	employees []*domain.Employee
	err       error
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	sessions []*domain.WorkSession
	err      error
}

func (f *fakeSessionRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.WorkSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.WorkSession
	for _, s := range f.sessions {
		if s.Date == date.Format(domain.DateLayout) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	events []*domain.Event
	err    error
}

func (f *fakeEventRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		if e.Date == date.Format(domain.DateLayout) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByWeek(ctx context.Context, weekStart time.Time) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		d, err := time.ParseInLocation(domain.DateLayout, e.Date, weekStart.Location())
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekStart.AddDate(0, 0, 7)) {
			out = append(out, e)
		}
	}
	return out, nil
}

var (
	testWindow = layout.Window{StartHour: 6, EndHour: 18}
	// Wednesday, 14:23 local time.
	testNow = time.Date(2025, 3, 5, 14, 23, 0, 0, time.Local)
)

func testMetrics() layout.Metrics {
	return layout.Metrics{
		HourHeight:          60,
		AllDayBaseHeight:    60,
		AllDayEventHeight:   30,
		AllDayBottomSpacing: 10,
		DayHeaderHeight:     40,
		EventPaddingPct:     2,
	}
}

func newTestService(er domain.EmployeeRepository, sr domain.SessionRepository, evr domain.EventRepository) domain.ScheduleService {
	logger := slog.New(slog.DiscardHandler)
	return NewScheduleService(er, sr, evr, testWindow, testMetrics(), logger, func() time.Time { return testNow }, 5*time.Second)
}

func today() string { return testNow.Format(domain.DateLayout) }

func findBlock(t *testing.T, col domain.ColumnView, id int, kind string) domain.ScheduleBlock {
	t.Helper()
	for _, b := range col.Blocks {
		if b.ID == id && b.Kind == kind {
			return b
		}
	}
	t.Fatalf("block %s/%d not found in column %s", kind, id, col.Key)
	return domain.ScheduleBlock{}
}

func TestScheduleService_DayView(t *testing.T) {
	er := &fakeEmployeeRepo{employees: []*domain.Employee{
		domain.NewEmployee(1, "Max Mustermann", "Vertrieb", "#4a90e2"),
		domain.NewEmployee(2, "Anna Schmidt", "Marketing", "#e74c3c"),
	}}
	sr := &fakeSessionRepo{sessions: []*domain.WorkSession{
		domain.NewWorkSession(1, 1, today(), "07:30", "12:15"),
		domain.NewWorkSession(2, 1, today(), "13:00", ""), // still logged in
	}}
	evr := &fakeEventRepo{events: []*domain.Event{
		domain.NewEvent(10, 2, today(), "09:00", "10:00", "meeting", "#4a90e2", "Project Review", false),
		domain.NewEvent(11, 2, today(), "09:30", "10:30", "planning", "#9b59b6", "Planning", false),
		domain.NewEvent(12, 2, today(), "", "", "holiday", "#2ecc71", "Conference", true),
	}}

	svc := newTestService(er, sr, evr)
	view, err := svc.DayView(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, today(), view.Date)
	assert.False(t, view.Degraded)
	require.Len(t, view.Columns, 2)

	// Tray has one all-day item: 1*30+10 < base 60, so base height stays.
	assert.Equal(t, 60.0, view.AllDayTrayHeight)
	assert.Equal(t, 100.0, view.HeaderHeight)

	// Active session extends to 14:23 with the sentinel end label.
	max := view.Columns[0]
	active := findBlock(t, max, 2, "session")
	assert.True(t, active.Active)
	assert.Equal(t, "13:00-now", active.TimeLabel)
	assert.InDelta(t, 100+7*60, active.Geometry.Top, 1e-9)
	assert.InDelta(t, (1+23.0/60)*60, active.Geometry.Height, 1e-9)

	closed := findBlock(t, max, 1, "session")
	assert.False(t, closed.Active)
	assert.Equal(t, "07:30-12:15", closed.TimeLabel)

	// The two overlapping events split the column side by side.
	anna := view.Columns[1]
	first := findBlock(t, anna, 10, "event")
	second := findBlock(t, anna, 11, "event")
	assert.InDelta(t, 48, first.Geometry.Width, 1e-9)
	assert.InDelta(t, 2, first.Geometry.Left, 1e-9)
	assert.InDelta(t, 48, second.Geometry.Width, 1e-9)
	assert.InDelta(t, 50, second.Geometry.Left, 1e-9)

	require.Len(t, anna.AllDay, 1)
	assert.Equal(t, "Conference", anna.AllDay[0].Label)
	assert.InDelta(t, 0, anna.AllDay[0].Geometry.Top, 1e-9)

	// 14:23 is inside the [6,18) window.
	assert.True(t, view.Timeline.Visible)
	assert.Equal(t, "14:23", view.Timeline.Label)
}

func TestScheduleService_DayView_PlaceholderFallback(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeEmployeeRepo
	}{
		{name: "fetch error", repo: &fakeEmployeeRepo{err: errors.New("connection refused")}},
		{name: "empty result", repo: &fakeEmployeeRepo{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.repo, &fakeSessionRepo{}, &fakeEventRepo{})
			view, err := svc.DayView(context.Background(), testNow)
			require.NoError(t, err)
			assert.True(t, view.Degraded)
			require.Len(t, view.Columns, 3)
			assert.Equal(t, "Max Mustermann", view.Columns[0].Title)
		})
	}
}

func TestScheduleService_DayView_RejectsMalformedTimes(t *testing.T) {
	er := &fakeEmployeeRepo{employees: []*domain.Employee{domain.NewEmployee(1, "Max", "", "")}}
	sr := &fakeSessionRepo{sessions: []*domain.WorkSession{
		domain.NewWorkSession(1, 1, today(), "25:00", "12:00"),
		domain.NewWorkSession(2, 1, today(), "08:00", "09:00"),
	}}
	evr := &fakeEventRepo{events: []*domain.Event{
		domain.NewEvent(10, 1, today(), "garbage", "10:00", "meeting", "#4a90e2", "", false),
		domain.NewEvent(11, 1, today(), "10:00", "11:00", "meeting", "#4a90e2", "", false),
	}}

	svc := newTestService(er, sr, evr)
	view, err := svc.DayView(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, view.Columns, 1)
	require.Len(t, view.Columns[0].Blocks, 2)
	assert.Equal(t, 2, view.Columns[0].Blocks[0].ID)
	assert.Equal(t, 11, view.Columns[0].Blocks[1].ID)
}

func TestScheduleService_DayView_OutOfWindowExcluded(t *testing.T) {
	er := &fakeEmployeeRepo{employees: []*domain.Employee{domain.NewEmployee(1, "Max", "", "")}}
	sr := &fakeSessionRepo{sessions: []*domain.WorkSession{
		domain.NewWorkSession(1, 1, today(), "19:00", "20:00"),
	}}
	svc := newTestService(er, sr, &fakeEventRepo{})

	view, err := svc.DayView(context.Background(), testNow)
	require.NoError(t, err)
	assert.Empty(t, view.Columns[0].Blocks)
}

func TestScheduleService_WeekView(t *testing.T) {
	monday := domain.MondayOfWeek(testNow)
	evr := &fakeEventRepo{events: []*domain.Event{
		{ID: 1, EmployerID: 1, EmployerName: "Max Mustermann", Date: monday.Format(domain.DateLayout),
			StartTime: "08:00", EndTime: "09:30", Category: "meeting", Color: "#4a90e2", Title: "Team Meeting"},
		{ID: 2, EmployerID: 2, EmployerName: "Anna Schmidt", Date: monday.AddDate(0, 0, 3).Format(domain.DateLayout),
			Category: "meeting", Color: "#3498db", IsAllDay: true, Title: "All-Day Meeting"},
	}}
	svc := newTestService(&fakeEmployeeRepo{}, &fakeSessionRepo{}, evr)

	view, err := svc.WeekView(context.Background(), testNow)
	require.NoError(t, err)

	require.Len(t, view.Columns, 7)
	assert.Equal(t, monday.Format(domain.DateLayout), view.WeekStart)
	assert.Contains(t, view.Columns[0].Title, "Montag")
	assert.True(t, view.Columns[2].IsToday, "testNow is a Wednesday")

	require.Len(t, view.Columns[0].Blocks, 1)
	b := view.Columns[0].Blocks[0]
	assert.Equal(t, "Team Meeting", b.Label)
	assert.Contains(t, b.Tooltip, "Mitarbeiter: Max Mustermann")

	require.Len(t, view.Columns[3].AllDay, 1)

	// Today falls inside the displayed week, so the indicator shows.
	assert.True(t, view.Timeline.Visible)
}

func TestScheduleService_WeekView_NormalizesToMonday(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeSessionRepo{}, &fakeEventRepo{})

	// Ask with a Thursday; the view still starts on Monday.
	view, err := svc.WeekView(context.Background(), testNow.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, domain.MondayOfWeek(testNow).Format(domain.DateLayout), view.WeekStart)
}

func TestScheduleService_WeekView_TimelineHiddenOutsideWeek(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeSessionRepo{}, &fakeEventRepo{})

	view, err := svc.WeekView(context.Background(), testNow.AddDate(0, 0, 14))
	require.NoError(t, err)
	assert.False(t, view.Timeline.Visible)
}

func TestScheduleService_RefreshTimeline(t *testing.T) {
	er := &fakeEmployeeRepo{employees: []*domain.Employee{domain.NewEmployee(1, "Max", "", "")}}
	sr := &fakeSessionRepo{sessions: []*domain.WorkSession{
		domain.NewWorkSession(2, 1, today(), "13:00", ""),
	}}

	current := testNow
	logger := slog.New(slog.DiscardHandler)
	svc := NewScheduleService(er, sr, &fakeEventRepo{}, testWindow, testMetrics(), logger,
		func() time.Time { return current }, 5*time.Second)

	_, err := svc.DayView(context.Background(), testNow)
	require.NoError(t, err)

	first := svc.Timeline()
	require.Len(t, first.Active, 1)
	assert.Equal(t, "13:00-now", first.Active[0].TimeLabel)
	assert.InDelta(t, (1+23.0/60)*60, first.Active[0].Height, 1e-9)

	// Ten minutes later the active block grows; nothing else changes.
	current = testNow.Add(10 * time.Minute)
	tick := svc.RefreshTimeline()
	require.Len(t, tick.Active, 1)
	assert.Equal(t, "1", tick.Active[0].ColumnKey)
	assert.Equal(t, 2, tick.Active[0].ID)
	assert.InDelta(t, (1+33.0/60)*60, tick.Active[0].Height, 1e-9)
	assert.Equal(t, "14:33", tick.Timeline.Label)

	// The snapshot is retained for readers.
	assert.Equal(t, tick, svc.Timeline())
}

func TestScheduleService_TimelineBeforeFirstRender(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeSessionRepo{}, &fakeEventRepo{})
	tick := svc.Timeline()
	assert.False(t, tick.Timeline.Visible)
	assert.Empty(t, tick.Active)
}

func TestScheduleService_ListEmployees_Masked(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{err: errors.New("boom")}, &fakeSessionRepo{}, &fakeEventRepo{})
	employees, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 3)
}
