package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "07:30", want: 450},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "unpadded hour", input: "7:30", want: 450},
		{name: "empty", input: "", wantErr: true},
		{name: "missing colon", input: "0730", wantErr: true},
		{name: "too many fields", input: "07:30:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "non-numeric hour", input: "ab:30", wantErr: true},
		{name: "non-numeric minute", input: "12:cd", wantErr: true},
		{name: "negative hour", input: "-1:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Equal(t, tt.input, parseErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "07:05", FormatClock(425))
	assert.Equal(t, "14:23", FormatClock(863))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:00", "13:07", "23:59"} {
		m, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(m))
	}
}
