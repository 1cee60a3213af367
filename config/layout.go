package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout holds the calendar grid dimensions and the timeline refresh
// schedule. All pixel values describe the rendered grid; the defaults are
// the ones the calendar always shipped with.
type Layout struct {
	// StartHour and EndHour bound the visible hour window (end exclusive
	// for item placement).
	StartHour int `yaml:"start_hour"`
	EndHour   int `yaml:"end_hour"`

	// HourHeight is the height of one hour row in pixels.
	HourHeight float64 `yaml:"hour_height"`

	// AllDayBaseHeight is the minimum height of the all-day tray.
	AllDayBaseHeight float64 `yaml:"all_day_base_height"`

	// AllDayEventHeight is the height of one stacked all-day block.
	AllDayEventHeight float64 `yaml:"all_day_event_height"`

	// AllDayBottomSpacing is the spacing reserved below the last all-day block.
	AllDayBottomSpacing float64 `yaml:"all_day_bottom_spacing"`

	// DayHeaderHeight is the height of the column title header.
	DayHeaderHeight float64 `yaml:"day_header_height"`

	// EventPaddingPct is the horizontal padding from the column edges, in
	// percent of the column width.
	EventPaddingPct float64 `yaml:"event_padding_pct"`

	// TickSchedule is a robfig/cron schedule for timeline refresh,
	// e.g. "@every 30s".
	TickSchedule string `yaml:"tick_schedule"`
}

// DefaultLayout returns the grid dimensions used when no layout file is
// configured.
func DefaultLayout() Layout {
	return Layout{
		StartHour:           6,
		EndHour:             18,
		HourHeight:          60,
		AllDayBaseHeight:    60,
		AllDayEventHeight:   30,
		AllDayBottomSpacing: 10,
		DayHeaderHeight:     40,
		EventPaddingPct:     2,
		TickSchedule:        "@every 30s",
	}
}

// LoadLayout reads a YAML layout file, applying defaults for any field left
// unset. A missing file is not an error: the defaults are returned so a
// bare deployment needs no layout file at all.
func LoadLayout(path string) (Layout, error) {
	l := DefaultLayout()
	if path == "" {
		return l, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l, nil
		}
		return l, fmt.Errorf("read layout config: %w", err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("parse layout config: %w", err)
	}
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

// Validate checks the window bounds and pixel dimensions.
func (l Layout) Validate() error {
	if l.StartHour < 0 || l.StartHour > 23 {
		return fmt.Errorf("layout config: start_hour %d out of range", l.StartHour)
	}
	if l.EndHour < 1 || l.EndHour > 24 {
		return fmt.Errorf("layout config: end_hour %d out of range", l.EndHour)
	}
	if l.EndHour <= l.StartHour {
		return fmt.Errorf("layout config: end_hour %d must be after start_hour %d", l.EndHour, l.StartHour)
	}
	if l.HourHeight <= 0 || l.AllDayEventHeight <= 0 {
		return errors.New("layout config: heights must be positive")
	}
	if l.EventPaddingPct < 0 || l.EventPaddingPct >= 50 {
		return fmt.Errorf("layout config: event_padding_pct %v out of range", l.EventPaddingPct)
	}
	if l.TickSchedule == "" {
		return errors.New("layout config: tick_schedule must be set")
	}
	return nil
}
