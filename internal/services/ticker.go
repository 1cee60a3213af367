package services

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// TimelineTicker periodically refreshes the current-time indicator and the
// extents of active-session blocks. It wraps a cron scheduler so the
// repeating tick can be started and canceled independently of the layout
// logic; a re-render only has to replace the service's render state, never
// the ticker itself.
type TimelineTicker struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewTimelineTicker schedules refresh on the given cron spec (e.g.
// "@every 30s") and returns the not-yet-started ticker.
func NewTimelineTicker(schedule string, logger *slog.Logger, refresh func()) (*TimelineTicker, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, refresh); err != nil {
		return nil, fmt.Errorf("invalid tick schedule %q: %w", schedule, err)
	}
	return &TimelineTicker{cron: c, logger: logger}, nil
}

// Start begins ticking in its own goroutine.
func (t *TimelineTicker) Start() {
	t.logger.Info("timeline ticker started")
	t.cron.Start()
}

// Stop cancels the repeating tick and waits for a running refresh to
// finish, so no tick acts on torn-down state after Stop returns.
func (t *TimelineTicker) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	t.logger.Info("timeline ticker stopped")
}
