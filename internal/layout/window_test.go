package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowClamp(t *testing.T) {
	w := Window{StartHour: 6, EndHour: 18}

	tests := []struct {
		name    string
		in      TimeRange
		want    TimeRange
		visible bool
	}{
		{name: "inside", in: TimeRange{Start: 540, End: 600}, want: TimeRange{Start: 540, End: 600}, visible: true},
		{name: "before window", in: TimeRange{Start: 240, End: 300}, visible: false},
		{name: "after window", in: TimeRange{Start: 1140, End: 1200}, visible: false},
		{name: "starts at ceiling", in: TimeRange{Start: 1080, End: 1140}, visible: false},
		{name: "ends at floor", in: TimeRange{Start: 300, End: 360}, want: TimeRange{Start: 360, End: 360}, visible: true},
		{name: "spans floor", in: TimeRange{Start: 330, End: 420}, want: TimeRange{Start: 360, End: 420}, visible: true},
		{name: "spans ceiling snaps to boundary", in: TimeRange{Start: 1020, End: 1110}, want: TimeRange{Start: 1020, End: 1080}, visible: true},
		{name: "spans whole window", in: TimeRange{Start: 0, End: 1439}, want: TimeRange{Start: 360, End: 1080}, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.Clamp(tt.in)
			require.Equal(t, tt.visible, ok)
			if tt.visible {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// A session entirely past the window ceiling (19:00-20:00 against [6,18))
// produces no geometry at all.
func TestWindowClamp_OutOfWindowExcluded(t *testing.T) {
	w := Window{StartHour: 6, EndHour: 18}
	_, ok := w.Clamp(TimeRange{Start: 19 * 60, End: 20 * 60})
	assert.False(t, ok)
}

func TestWindowClamp_Idempotent(t *testing.T) {
	w := Window{StartHour: 6, EndHour: 18}
	ranges := []TimeRange{
		{Start: 330, End: 420},
		{Start: 1020, End: 1110},
		{Start: 0, End: 1439},
		{Start: 540, End: 600},
	}
	for _, r := range ranges {
		once, ok := w.Clamp(r)
		require.True(t, ok)
		twice, ok := w.Clamp(once)
		require.True(t, ok)
		assert.Equal(t, once, twice)
	}
}

func TestWindowContainsHour(t *testing.T) {
	w := Window{StartHour: 6, EndHour: 18}
	assert.False(t, w.ContainsHour(5))
	assert.True(t, w.ContainsHour(6))
	assert.True(t, w.ContainsHour(17))
	assert.False(t, w.ContainsHour(18))
	assert.False(t, w.ContainsHour(23))
}
