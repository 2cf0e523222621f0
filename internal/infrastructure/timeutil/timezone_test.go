package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "empty resolves to UTC", input: "", want: "UTC"},
		{name: "UTC", input: UTC, want: "UTC"},
		{name: "IANA name", input: "America/New_York", want: "America/New_York"},
		{name: "unknown zone", input: "Mars/Olympus_Mons", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := GetLocation(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())

			// Second lookup is served from cache
			again, err := GetLocation(tt.input)
			require.NoError(t, err)
			assert.Same(t, loc, again)
		})
	}
}

func TestMustGetLocation_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustGetLocation("Not/A_Zone") })
	assert.NotPanics(t, func() { MustGetLocation(UTC) })
}

func TestAtClock(t *testing.T) {
	got, err := AtClock("2024-01-15", time.UTC, 8, 45)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 45, 0, 0, time.UTC), got)

	ny := MustGetLocation("America/New_York")
	got, err = AtClock("2024-07-04", ny, 21, 5)
	require.NoError(t, err)
	assert.Equal(t, 21, got.Hour())
	assert.Equal(t, "2024-07-04", FormatDate(got))
	assert.Equal(t, ny, got.Location())

	got, err = AtClock("2024-01-15", nil, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	_, err = AtClock("15/01/2024", time.UTC, 6, 0)
	assert.Error(t, err)
}
