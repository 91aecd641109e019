// ABOUTME: Tests for weekly recurrence expansion.
// ABOUTME: Covers ordering, windowing, and degenerate inputs.
package recur

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExpandMonWedFriTwoWeeks(t *testing.T) {
	// 2024-06-03 is a Monday.
	start := date(2024, time.June, 3)
	days := NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)

	got := Expand(start, days, 2)

	want := []time.Time{
		date(2024, time.June, 3),
		date(2024, time.June, 5),
		date(2024, time.June, 7),
		date(2024, time.June, 10),
		date(2024, time.June, 12),
		date(2024, time.June, 14),
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d occurrences, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("occurrence %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpandStartDateIncludedWhenMatching(t *testing.T) {
	start := date(2024, time.June, 3) // Monday
	got := Expand(start, NewWeekdaySet(time.Monday), 1)
	if len(got) != 1 {
		t.Fatalf("Expected 1 occurrence, got %d", len(got))
	}
	if !got[0].Equal(start) {
		t.Errorf("Expected start date itself, got %v", got[0])
	}
}

func TestExpandStartDateExcludedWhenNotMatching(t *testing.T) {
	start := date(2024, time.June, 4) // Tuesday
	got := Expand(start, NewWeekdaySet(time.Monday), 1)
	if len(got) != 1 {
		t.Fatalf("Expected 1 occurrence, got %d", len(got))
	}
	// Next Monday is June 10, inside [Jun 4, Jun 11).
	if want := date(2024, time.June, 10); !got[0].Equal(want) {
		t.Errorf("Expected %v, got %v", want, got[0])
	}
}

func TestExpandEmptyInputs(t *testing.T) {
	start := date(2024, time.June, 3)

	if got := Expand(start, WeekdaySet(0), 4); got != nil {
		t.Errorf("Empty weekday set: expected nil, got %v", got)
	}
	if got := Expand(start, NewWeekdaySet(time.Monday), 0); got != nil {
		t.Errorf("Zero weeks: expected nil, got %v", got)
	}
	if got := Expand(start, NewWeekdaySet(time.Monday), -1); got != nil {
		t.Errorf("Negative weeks: expected nil, got %v", got)
	}
}

func TestExpandCountLaw(t *testing.T) {
	// k weekdays over w whole weeks starting on any day yields exactly k*w
	// dates: each selected weekday occurs once per 7-day block of the
	// half-open window.
	sets := []WeekdaySet{
		NewWeekdaySet(time.Monday),
		NewWeekdaySet(time.Tuesday, time.Thursday),
		NewWeekdaySet(time.Monday, time.Wednesday, time.Friday),
		NewWeekdaySet(time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday),
	}
	for startDay := 0; startDay < 7; startDay++ {
		start := date(2024, time.June, 2+startDay)
		for _, days := range sets {
			for weeks := 1; weeks <= 6; weeks++ {
				got := Expand(start, days, weeks)
				if want := days.Len() * weeks; len(got) != want {
					t.Errorf("start=%v days=%v weeks=%d: got %d dates, want %d",
						start, days, weeks, len(got), want)
				}
			}
		}
	}
}

func TestExpandStrictlyIncreasing(t *testing.T) {
	start := date(2024, time.January, 1)
	days := NewWeekdaySet(time.Sunday, time.Wednesday, time.Saturday)

	got := Expand(start, days, 8)
	for i := 1; i < len(got); i++ {
		if !got[i-1].Before(got[i]) {
			t.Errorf("Not strictly increasing at %d: %v then %v", i, got[i-1], got[i])
		}
	}
	end := start.AddDate(0, 0, 8*7)
	for _, d := range got {
		if d.Before(start) || !d.Before(end) {
			t.Errorf("Date %v outside window [%v, %v)", d, start, end)
		}
		if !days.Contains(d.Weekday()) {
			t.Errorf("Date %v has weekday %v outside the set", d, d.Weekday())
		}
	}
}

func TestExpandTruncatesTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.June, 3, 14, 30, 0, 0, time.Local)
	got := Expand(start, NewWeekdaySet(time.Monday), 1)
	if len(got) != 1 {
		t.Fatalf("Expected 1 occurrence, got %d", len(got))
	}
	if h, m, s := got[0].Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Expected local midnight, got %v", got[0])
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		in   string
		want WeekdaySet
	}{
		{"mon,wed,fri", NewWeekdaySet(time.Monday, time.Wednesday, time.Friday)},
		{"Monday, Thursday", NewWeekdaySet(time.Monday, time.Thursday)},
		{"sat,sun", NewWeekdaySet(time.Saturday, time.Sunday)},
		{"", WeekdaySet(0)},
		{"noday", WeekdaySet(0)},
		{"mon,mon", NewWeekdaySet(time.Monday)},
	}
	for _, tt := range tests {
		if got := ParseWeekdays(tt.in); got != tt.want {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
