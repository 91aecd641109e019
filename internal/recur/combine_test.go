// ABOUTME: Tests for date + time-of-day + duration combination.
// ABOUTME: Verifies defaults for missing clock and duration.
package recur

import (
	"testing"
	"time"
)

func TestCombine(t *testing.T) {
	d := date(2024, time.June, 3)

	start, end := Combine(d, "18:00", 60)

	wantStart := time.Date(2024, time.June, 3, 18, 0, 0, 0, time.Local)
	if !start.Equal(wantStart) {
		t.Errorf("start: got %v, want %v", start, wantStart)
	}
	if want := wantStart.Add(time.Hour); !end.Equal(want) {
		t.Errorf("end: got %v, want %v", end, want)
	}
}

func TestCombineDefaultsClock(t *testing.T) {
	d := date(2024, time.June, 3)

	for _, clock := range []string{"", "not a time", "25:99"} {
		start, _ := Combine(d, clock, 30)
		if h, m, _ := start.Clock(); h != 18 || m != 0 {
			t.Errorf("clock %q: expected 18:00 default, got %02d:%02d", clock, h, m)
		}
	}
}

func TestCombineDefaultsDuration(t *testing.T) {
	d := date(2024, time.June, 3)

	for _, dur := range []int{0, -15} {
		start, end := Combine(d, "07:30", dur)
		if got := end.Sub(start); got != 60*time.Minute {
			t.Errorf("duration %d: expected 60m default, got %v", dur, got)
		}
	}
}

func TestCombineEndAfterStart(t *testing.T) {
	d := date(2024, time.June, 3)
	start, end := Combine(d, "23:45", 90)
	if !start.Before(end) {
		t.Errorf("start %v not before end %v", start, end)
	}
	if got := end.Sub(start); got != 90*time.Minute {
		t.Errorf("Expected 90m window, got %v", got)
	}
}
