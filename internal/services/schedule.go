package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"staffcalendar/internal/domain"
	"staffcalendar/internal/layout"
)

// OpenEndLabel is the sentinel shown as the end time of a session that is
// still running.
const OpenEndLabel = "now"

// sessionLabel is the block title for work sessions, which carry no title
// of their own.
const sessionLabel = "Arbeitszeit"

// defaultBlockColor is used when a record carries no valid color.
const defaultBlockColor = "#4a90e2"

// German day names, Monday first, as the week view displays them.
var weekdayNames = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

type scheduleService struct {
	employeeRepo   domain.EmployeeRepository
	sessionRepo    domain.SessionRepository
	eventRepo      domain.EventRepository
	window         layout.Window
	metrics        layout.Metrics
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration

	// mu guards the derived state of the most recent render pass. The
	// render flow is the only writer; timeline ticks only read it.
	mu       sync.Mutex
	render   *renderState
	lastTick domain.TimelineUpdate
}

// renderState is the explicit render context a timeline tick works
// against: the header geometry of the last full render pass plus the
// open-ended session blocks whose extent a tick refreshes. It is replaced
// wholesale by every render pass.
type renderState struct {
	week         bool
	weekStart    time.Time
	headerHeight float64
	active       []activeItem
}

// activeItem identifies one rendered open-ended session block.
type activeItem struct {
	columnKey string
	id        int
	start     int
}

// NewScheduleService returns the schedule business logic. nowFn is the
// wall clock; pass nil for time.Now.
func NewScheduleService(
	employeeRepo domain.EmployeeRepository,
	sessionRepo domain.SessionRepository,
	eventRepo domain.EventRepository,
	window layout.Window,
	metrics layout.Metrics,
	logger *slog.Logger,
	nowFn func() time.Time,
	timeout time.Duration,
) domain.ScheduleService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &scheduleService{
		employeeRepo:   employeeRepo,
		sessionRepo:    sessionRepo,
		eventRepo:      eventRepo,
		window:         window,
		metrics:        metrics,
		logger:         logger,
		now:            nowFn,
		contextTimeout: timeout,
	}
}

// placeholderEmployees is the degraded-mode dataset substituted when the
// employee fetch fails or comes back empty, so the calendar still renders.
func placeholderEmployees() []*domain.Employee {
	return []*domain.Employee{
		domain.NewEmployee(1, "Max Mustermann", "", ""),
		domain.NewEmployee(2, "Anna Schmidt", "", ""),
		domain.NewEmployee(3, "Peter Weber", "", ""),
	}
}

func (s *scheduleService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	employees, _ := s.loadEmployees(ctx)
	return employees, nil
}

// loadEmployees fetches the employee list, masking fetch failures and
// empty results with the placeholder dataset. The second return reports
// degraded mode.
func (s *scheduleService) loadEmployees(ctx context.Context) ([]*domain.Employee, bool) {
	employees, err := s.employeeRepo.List(ctx)
	if err == nil && len(employees) == 0 {
		err = domain.ErrEmptyResult
	}
	if err != nil {
		s.logger.Error("employee fetch failed, serving placeholder dataset", "error", err)
		return placeholderEmployees(), true
	}
	return employees, false
}

func (s *scheduleService) ListSessions(ctx context.Context, date time.Time) ([]*domain.WorkSession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	sessions, err := s.sessionRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.WorkSession{}
	}
	return sessions, nil
}

func (s *scheduleService) ListEvents(ctx context.Context, date time.Time) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *scheduleService) ListWeekEvents(ctx context.Context, weekStart time.Time) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	events, err := s.eventRepo.ListByWeek(ctx, domain.MondayOfWeek(weekStart))
	if err != nil {
		return nil, fmt.Errorf("list week events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// blockSource pairs a layout item with the presentation data that survives
// into the rendered block. The layout.Item.ID of a source is its index in
// the column's source slice, so grouping results can be mapped back.
type blockSource struct {
	recordID  int
	kind      string
	label     string
	timeLabel string
	tooltip   string
	color     string
	active    bool
}

// column accumulates the layout input of one vertical lane.
type column struct {
	key     string
	title   string
	isToday bool

	timed       []layout.Item
	timedSrc    []blockSource
	allDaySrc   []blockSource
	allDayItems []layout.Item
}

func (c *column) addTimed(item layout.Item, src blockSource) {
	item.ColumnKey = c.key
	item.ID = len(c.timedSrc)
	c.timed = append(c.timed, item)
	c.timedSrc = append(c.timedSrc, src)
}

func (c *column) addAllDay(recordID int, src blockSource) {
	c.allDayItems = append(c.allDayItems, layout.Item{ID: recordID, ColumnKey: c.key, AllDay: true})
	c.allDaySrc = append(c.allDaySrc, src)
}

func (s *scheduleService) DayView(ctx context.Context, date time.Time) (*domain.ScheduleView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	employees, degraded := s.loadEmployees(ctx)

	sessions, err := s.sessionRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("session fetch failed, rendering without sessions", "error", err, "date", date.Format(domain.DateLayout))
		sessions = nil
		degraded = true
	}
	events, err := s.eventRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("event fetch failed, rendering without events", "error", err, "date", date.Format(domain.DateLayout))
		events = nil
		degraded = true
	}

	columns := make([]*column, 0, len(employees))
	byEmployer := make(map[int]*column, len(employees))
	employerColor := make(map[int]string, len(employees))
	for _, emp := range employees {
		col := &column{key: strconv.Itoa(emp.ID), title: emp.Name}
		columns = append(columns, col)
		byEmployer[emp.ID] = col
		employerColor[emp.ID] = emp.Color
	}

	nowMinute := minuteOfDay(now)
	for _, sess := range sessions {
		col, ok := byEmployer[sess.EmployerID]
		if !ok {
			continue
		}
		item, src, err := s.sessionBlock(sess, col.title, employerColor[sess.EmployerID], nowMinute)
		if err != nil {
			s.logger.Warn("rejecting malformed session record", "error", err, "session_id", sess.ID)
			continue
		}
		col.addTimed(item, src)
	}
	for _, ev := range events {
		col, ok := byEmployer[ev.EmployerID]
		if !ok {
			continue
		}
		s.addEvent(col, ev, col.title)
	}

	view := s.assemble(columns, degraded)
	view.Date = date.Format(domain.DateLayout)

	s.commitRender(&renderState{headerHeight: view.HeaderHeight, active: collectActive(columns)}, now, view)
	return view, nil
}

func (s *scheduleService) WeekView(ctx context.Context, weekStart time.Time) (*domain.ScheduleView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	monday := domain.MondayOfWeek(weekStart)
	degraded := false

	events, err := s.eventRepo.ListByWeek(ctx, monday)
	if err != nil {
		s.logger.Error("week event fetch failed, rendering empty week", "error", err, "week_start", monday.Format(domain.DateLayout))
		events = nil
		degraded = true
	}

	columns := make([]*column, 0, 7)
	byDate := make(map[string]*column, 7)
	for i, day := range domain.WeekDates(monday) {
		key := day.Format(domain.DateLayout)
		col := &column{
			key:     key,
			title:   fmt.Sprintf("%s, %d.%d.", weekdayNames[i], day.Day(), int(day.Month())),
			isToday: domain.SameDate(day, now),
		}
		columns = append(columns, col)
		byDate[key] = col
	}

	for _, ev := range events {
		col, ok := byDate[ev.Date]
		if !ok {
			continue
		}
		s.addEvent(col, ev, ev.EmployerName)
	}

	view := s.assemble(columns, degraded)
	view.Date = monday.Format(domain.DateLayout)
	view.WeekStart = monday.Format(domain.DateLayout)

	s.commitRender(&renderState{week: true, weekStart: monday, headerHeight: view.HeaderHeight}, now, view)
	return view, nil
}

// sessionBlock converts one work session into a layout item. Open sessions
// extend to the current minute and get the sentinel end label.
func (s *scheduleService) sessionBlock(sess *domain.WorkSession, employeeName, color string, nowMinute int) (layout.Item, blockSource, error) {
	start, err := layout.ParseClock(sess.LoginTime)
	if err != nil {
		return layout.Item{}, blockSource{}, err
	}
	end := 0
	timeLabel := ""
	open := sess.Active()
	if open {
		end = nowMinute
		if end < start {
			end = start
		}
		timeLabel = sess.LoginTime + "-" + OpenEndLabel
	} else {
		end, err = layout.ParseClock(sess.LogoutTime)
		if err != nil {
			return layout.Item{}, blockSource{}, err
		}
		timeLabel = sess.LoginTime + "-" + sess.LogoutTime
	}
	if !layout.IsValidHexColor(color) {
		color = defaultBlockColor
	}
	item := layout.Item{Range: layout.TimeRange{Start: start, End: end}, Open: open}
	src := blockSource{
		recordID:  sess.ID,
		kind:      "session",
		label:     sessionLabel,
		timeLabel: timeLabel,
		tooltip:   fmt.Sprintf("%s\n%s\nMitarbeiter: %s", sessionLabel, timeLabel, employeeName),
		color:     color,
		active:    open,
	}
	return item, src, nil
}

// addEvent converts one event record into an all-day or timed layout item
// on the column, rejecting records with malformed times.
func (s *scheduleService) addEvent(col *column, ev *domain.Event, employeeName string) {
	color := ev.Color
	if !layout.IsValidHexColor(color) {
		color = defaultBlockColor
	}
	tooltip := func(timeInfo string) string {
		t := fmt.Sprintf("%s\n%s\nKategorie: %s", ev.DisplayTitle(), timeInfo, ev.Category)
		if employeeName != "" {
			t += "\nMitarbeiter: " + employeeName
		}
		return t
	}

	if ev.IsAllDay {
		col.addAllDay(ev.ID, blockSource{
			recordID: ev.ID,
			kind:     "event",
			label:    ev.DisplayTitle(),
			tooltip:  tooltip("Ganztägig"),
			color:    color,
		})
		return
	}

	start, err := layout.ParseClock(ev.StartTime)
	if err != nil {
		s.logger.Warn("rejecting malformed event record", "error", err, "event_id", ev.ID)
		return
	}
	end, err := layout.ParseClock(ev.EndTime)
	if err != nil {
		s.logger.Warn("rejecting malformed event record", "error", err, "event_id", ev.ID)
		return
	}
	timeLabel := ev.StartTime + "-" + ev.EndTime
	col.addTimed(layout.Item{Range: layout.TimeRange{Start: start, End: end}}, blockSource{
		recordID:  ev.ID,
		kind:      "event",
		label:     ev.DisplayTitle(),
		timeLabel: timeLabel,
		tooltip:   tooltip(timeLabel),
		color:     color,
	})
}

// assemble runs the layout pipeline over the prepared columns: all-day
// tray sizing, overlap grouping and geometry projection. The timeline is
// filled in by commitRender, which also seeds the tick snapshot.
func (s *scheduleService) assemble(columns []*column, degraded bool) *domain.ScheduleView {
	keys := make([]string, len(columns))
	var allItems []layout.Item
	for i, col := range columns {
		keys[i] = col.key
		allItems = append(allItems, col.allDayItems...)
	}
	tray := layout.ComputeAllDayHeights(keys, allItems, s.metrics)
	headerHeight := s.metrics.HeaderHeight(tray.SharedHeight)

	view := &domain.ScheduleView{
		StartHour:        s.window.StartHour,
		EndHour:          s.window.EndHour,
		HourHeight:       s.metrics.HourHeight,
		HeaderHeight:     headerHeight,
		AllDayTrayHeight: tray.SharedHeight,
		Degraded:         degraded,
		Columns:          make([]domain.ColumnView, 0, len(columns)),
	}

	for _, col := range columns {
		cv := domain.ColumnView{
			Key:     col.key,
			Title:   col.title,
			IsToday: col.isToday,
			AllDay:  make([]domain.AllDayBlock, 0, len(col.allDaySrc)),
			Blocks:  []domain.ScheduleBlock{},
		}
		for i, src := range col.allDaySrc {
			geom := layout.ProjectAllDay(i, s.metrics)
			cv.AllDay = append(cv.AllDay, domain.AllDayBlock{
				ID:        src.recordID,
				Label:     src.label,
				Tooltip:   src.tooltip,
				Color:     src.color,
				TextColor: layout.ContrastingTextColor(src.color),
				Geometry:  blockGeometry(geom),
			})
		}
		for _, group := range layout.GroupOverlapping(col.timed) {
			for i, it := range group {
				clamped, ok := s.window.Clamp(it.Range)
				if !ok {
					continue
				}
				geom := layout.Project(clamped, s.window, headerHeight, s.metrics)
				geom.Left, geom.Width = layout.GroupSlot(len(group), i, s.metrics)
				src := col.timedSrc[it.ID]
				cv.Blocks = append(cv.Blocks, domain.ScheduleBlock{
					ID:        src.recordID,
					Kind:      src.kind,
					Label:     src.label,
					TimeLabel: src.timeLabel,
					Tooltip:   src.tooltip,
					Color:     src.color,
					TextColor: layout.ContrastingTextColor(src.color),
					Active:    src.active,
					Geometry:  blockGeometry(geom),
				})
			}
		}
		view.Columns = append(view.Columns, cv)
	}
	return view
}

// collectActive gathers the open-ended session blocks a timeline tick must
// keep extending. Only blocks that produced visible geometry matter, but
// clamping is re-run per tick anyway, so all open items are kept.
func collectActive(columns []*column) []activeItem {
	var active []activeItem
	for _, col := range columns {
		for _, it := range col.timed {
			if it.Open {
				active = append(active, activeItem{
					columnKey: col.key,
					id:        col.timedSrc[it.ID].recordID,
					start:     it.Range.Start,
				})
			}
		}
	}
	return active
}

// commitRender atomically replaces the tick-visible derived state of the
// previous render pass and seeds the first tick snapshot.
func (s *scheduleService) commitRender(state *renderState, now time.Time, view *domain.ScheduleView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render = state
	s.lastTick = s.computeTick(now)
	view.Timeline = s.lastTick.Timeline
}

func (s *scheduleService) RefreshTimeline() domain.TimelineUpdate {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTick = s.computeTick(now)
	return s.lastTick
}

func (s *scheduleService) Timeline() domain.TimelineUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTick
}

// computeTick recomputes the indicator and active-session extents against
// the current render state. Grouping and horizontal slots stay frozen;
// only vertical geometry and the end label are refreshed. Callers hold mu.
func (s *scheduleService) computeTick(now time.Time) domain.TimelineUpdate {
	if s.render == nil {
		return domain.TimelineUpdate{}
	}
	var tl layout.Timeline
	if s.render.week {
		tl = layout.ComputeWeekTimeline(now, s.render.weekStart, s.window, s.render.headerHeight, s.metrics)
	} else {
		tl = layout.ComputeTimeline(now, s.window, s.render.headerHeight, s.metrics)
	}

	nowMinute := minuteOfDay(now)
	var updates []domain.ActiveBlockUpdate
	for _, a := range s.render.active {
		end := nowMinute
		if end < a.start {
			end = a.start
		}
		clamped, ok := s.window.Clamp(layout.TimeRange{Start: a.start, End: end})
		if !ok {
			continue
		}
		geom := layout.Project(clamped, s.window, s.render.headerHeight, s.metrics)
		updates = append(updates, domain.ActiveBlockUpdate{
			ColumnKey: a.columnKey,
			ID:        a.id,
			Top:       geom.Top,
			Height:    geom.Height,
			TimeLabel: layout.FormatClock(a.start) + "-" + OpenEndLabel,
		})
	}
	return domain.TimelineUpdate{Timeline: timelineView(tl), Active: updates}
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func timelineView(tl layout.Timeline) domain.TimelineView {
	return domain.TimelineView{Visible: tl.Visible, Top: tl.Top, Label: tl.Label}
}

func blockGeometry(g layout.Geometry) domain.BlockGeometry {
	return domain.BlockGeometry{Top: g.Top, Height: g.Height, Left: g.Left, Width: g.Width}
}
