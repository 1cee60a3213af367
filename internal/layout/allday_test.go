package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetrics() Metrics {
	return Metrics{
		HourHeight:          60,
		AllDayBaseHeight:    60,
		AllDayEventHeight:   30,
		AllDayBottomSpacing: 10,
		DayHeaderHeight:     40,
		EventPaddingPct:     2,
	}
}

func allDayItem(id int, column string) Item {
	return Item{ID: id, ColumnKey: column, AllDay: true}
}

func TestComputeAllDayHeights(t *testing.T) {
	m := testMetrics()
	columns := []string{"a", "b", "c"}

	tests := []struct {
		name       string
		items      []Item
		wantShared float64
		wantCounts map[string]int
	}{
		{
			name:       "no all-day items keeps base height",
			items:      []Item{{ID: 1, ColumnKey: "a", Range: TimeRange{Start: 540, End: 600}}},
			wantShared: 60,
			wantCounts: map[string]int{"a": 0, "b": 0, "c": 0},
		},
		{
			name:       "one item still below base",
			items:      []Item{allDayItem(1, "a")},
			wantShared: 60, // 1*30+10 < base 60
			wantCounts: map[string]int{"a": 1, "b": 0, "c": 0},
		},
		{
			name:       "two items grow the tray",
			items:      []Item{allDayItem(1, "a"), allDayItem(2, "a")},
			wantShared: 70,
			wantCounts: map[string]int{"a": 2, "b": 0, "c": 0},
		},
		{
			name: "shared height follows the busiest column",
			items: []Item{
				allDayItem(1, "a"),
				allDayItem(2, "b"), allDayItem(3, "b"), allDayItem(4, "b"),
			},
			wantShared: 100,
			wantCounts: map[string]int{"a": 1, "b": 3, "c": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAllDayHeights(columns, tt.items, m)
			assert.Equal(t, tt.wantShared, got.SharedHeight)
			assert.Equal(t, tt.wantCounts, got.PerColumn)
		})
	}
}

// Adding all-day items to any column never shrinks the shared tray.
func TestComputeAllDayHeights_Monotone(t *testing.T) {
	m := testMetrics()
	columns := []string{"a", "b"}

	var items []Item
	prev := 0.0
	for i := 1; i <= 8; i++ {
		col := "a"
		if i%2 == 0 {
			col = "b"
		}
		items = append(items, allDayItem(i, col))
		got := ComputeAllDayHeights(columns, items, m)
		require.GreaterOrEqual(t, got.SharedHeight, prev, "after %d items", i)
		prev = got.SharedHeight
	}
}

func TestMetricsHeaderHeight(t *testing.T) {
	m := testMetrics()
	assert.Equal(t, 100.0, m.HeaderHeight(60))
	assert.Equal(t, 140.0, m.HeaderHeight(100))
}
