// ABOUTME: Combines a calendar date, a time-of-day, and a duration into a session window.
// ABOUTME: Pure; degrades to documented defaults instead of failing.
package recur

import (
	"time"
)

const (
	// DefaultClock is used when the time-of-day is missing or unparseable.
	DefaultClock = "18:00"
	// DefaultDurationMin is used when no positive duration is supplied.
	DefaultDurationMin = 60
)

// Combine merges a calendar date, a "HH:MM" 24h time-of-day, and a duration
// in minutes into a (start, end) pair of instants in the date's location.
// An unparseable clock falls back to 18:00 and a non-positive duration to
// 60 minutes.
func Combine(date time.Time, clock string, durationMin int) (start, end time.Time) {
	hour, min, ok := parseClock(clock)
	if !ok {
		hour, min, _ = parseClock(DefaultClock)
	}
	if durationMin <= 0 {
		durationMin = DefaultDurationMin
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, date.Location())
	end = start.Add(time.Duration(durationMin) * time.Minute)
	return start, end
}

// parseClock parses "HH:MM" into hour and minute components.
func parseClock(s string) (hour, min int, ok bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
