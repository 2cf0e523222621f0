package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    string
	}{
		{name: "hours and minutes", hours: 7, minutes: 30, want: "7h 30m"},
		{name: "zero keeps both parts", hours: 0, minutes: 0, want: "0h 0m"},
		{name: "only hours", hours: 2, minutes: 0, want: "2h 0m"},
		{name: "only minutes", hours: 0, minutes: 45, want: "0h 45m"},
		{name: "large duration", hours: 12, minutes: 5, want: "12h 5m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.hours, tt.minutes))
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "hours and minutes", input: "7h 30m", want: 450},
		{name: "zero", input: "0h 0m", want: 0},
		{name: "single digit minutes", input: "1h 5m", want: 65},
		{name: "garbage", input: "soon", want: 0},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(tt.input))
		})
	}
}

func TestDurationMinutes_RoundTrip(t *testing.T) {
	for h := 0; h < 13; h++ {
		for m := 0; m < 60; m += 7 {
			assert.Equal(t, h*60+m, DurationMinutes(FormatDuration(h, m)))
		}
	}
}
