package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		millis   int64
		expected string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 45 * MillisPerSecond, "0:45"},
		{"under an hour", 25*MillisPerMinute + 5*MillisPerSecond, "25:05"},
		{"over an hour", 2*MillisPerHour + 3*MillisPerMinute + 4*MillisPerSecond, "2:03:04"},
		{"sub-second truncated", 999, "0:00"},
		{"negative clamped", -5000, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.millis))
		})
	}
}

func TestHours(t *testing.T) {
	assert.Equal(t, 1.5, Hours(90*MillisPerMinute))
	assert.Equal(t, 0.0, Hours(0))
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"Monday maps to itself", time.Date(2024, 3, 11, 14, 30, 0, 0, time.Local)},
		{"Wednesday", time.Date(2024, 3, 13, 9, 0, 0, 0, time.Local)},
		{"Sunday belongs to the preceding Monday", time.Date(2024, 3, 17, 23, 59, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, monday.Equal(StartOfWeek(tt.in)),
				"got %v", StartOfWeek(tt.in))
		})
	}
}

func TestStartOfQuarter(t *testing.T) {
	tests := []struct {
		in       time.Time
		expected time.Time
	}{
		{time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local), time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)},
		{time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local), time.Date(2024, 4, 1, 0, 0, 0, 0, time.Local)},
		{time.Date(2024, 9, 30, 23, 59, 0, 0, time.Local), time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)},
		{time.Date(2024, 12, 25, 8, 0, 0, 0, time.Local), time.Date(2024, 10, 1, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		assert.True(t, tt.expected.Equal(StartOfQuarter(tt.in)),
			"%v: got %v", tt.in, StartOfQuarter(tt.in))
	}
}

func TestDayKey(t *testing.T) {
	morning := time.Date(2024, 3, 11, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 3, 11, 23, 59, 59, 0, time.Local)

	assert.Equal(t, "2024-03-11", DayKey(morning))
	assert.Equal(t, DayKey(morning), DayKey(night))
	assert.NotEqual(t, DayKey(morning), DayKey(night.Add(time.Minute)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 11, 1, 0, 0, 0, time.Local)
	b := time.Date(2024, 3, 11, 23, 0, 0, 0, time.Local)
	c := time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestWorkingDays(t *testing.T) {
	// Monday 2024-03-11 through Sunday 2024-03-17: five weekdays.
	start := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 17, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 5, WorkingDays(start, end))

	// A weekend-only range has none.
	sat := time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local)
	sun := time.Date(2024, 3, 17, 0, 0, 0, 0, time.Local)
	assert.Equal(t, 0, WorkingDays(sat, sun))
}
