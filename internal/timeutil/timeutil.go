package timeutil

import (
	"fmt"
	"time"
)

// Millisecond multiples used throughout duration arithmetic.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
)

// FormatDuration formats milliseconds as "h:mm:ss", or "m:ss" when under an
// hour, matching the tracker's display convention.
func FormatDuration(millis int64) string {
	if millis < 0 {
		millis = 0
	}
	totalSeconds := millis / MillisPerSecond
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Hours converts milliseconds to fractional hours.
func Hours(millis int64) float64 {
	return float64(millis) / float64(MillisPerHour)
}

// StartOfDay returns midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	weekday := int(day.Weekday())
	daysToMonday := weekday - 1
	if weekday == 0 { // Sunday
		daysToMonday = 6
	}
	return day.AddDate(0, 0, -daysToMonday)
}

// StartOfMonth returns midnight of the 1st of the month containing t.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfQuarter returns midnight of the first day of the quarter containing t.
func StartOfQuarter(t time.Time) time.Time {
	quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight of January 1st of the year containing t.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// DayKey returns a calendar-day grouping key for t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WorkingDays counts the weekdays between start and end, inclusive.
func WorkingDays(start, end time.Time) int {
	count := 0
	for d := StartOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}
