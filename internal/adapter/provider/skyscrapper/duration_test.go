package skyscrapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input   string
		hours   int
		minutes int
		ok      bool
	}{
		{"PT7H30M", 7, 30, true},
		{"PT0H5M", 0, 5, true},
		{"PT12H0M", 12, 0, true},
		{"xxPT1H2Mxx", 1, 2, true},
		{"PT45M", 0, 0, false},
		{"PT3H", 0, 0, false},
		{"N/A", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h, m, ok := ParseISODuration(tt.input)
			assert.Equal(t, tt.hours, h)
			assert.Equal(t, tt.minutes, m)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestFormatISODuration(t *testing.T) {
	assert.Equal(t, "PT7H30M", FormatISODuration(7, 30))
	assert.Equal(t, "PT1H0M", FormatISODuration(1, 0))

	h, m, ok := ParseISODuration(FormatISODuration(11, 59))
	assert.True(t, ok)
	assert.Equal(t, 11, h)
	assert.Equal(t, 59, m)
}
