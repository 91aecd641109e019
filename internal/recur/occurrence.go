// ABOUTME: Weekly recurrence expansion into concrete calendar dates.
// ABOUTME: All date math uses local calendar components, never instant round-trips.
package recur

import (
	"strings"
	"time"
)

// WeekdaySet is a set of weekdays, Sunday through Saturday.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Empty reports whether no weekday is selected.
func (s WeekdaySet) Empty() bool {
	return s&0x7f == 0
}

// Len returns the number of selected weekdays.
func (s WeekdaySet) Len() int {
	n := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

// String renders the set as a comma-separated list of short day names.
func (s WeekdaySet) String() string {
	var names []string
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Contains(d) {
			names = append(names, d.String()[:3])
		}
	}
	return strings.Join(names, ",")
}

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekdays parses a comma-separated list of day names ("mon,wed,fri")
// into a WeekdaySet. Unknown names are ignored; an input with no valid day
// yields the empty set.
func ParseWeekdays(s string) WeekdaySet {
	var set WeekdaySet
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if d, ok := dayNames[name]; ok {
			set |= 1 << uint(d)
		}
	}
	return set
}

// Expand returns the ordered dates in [start, start+7*weeks) whose weekday
// is in the set, as local midnights. The start date itself is included when
// its weekday matches. An empty set or weeks <= 0 yields nil.
//
// The window is walked a day at a time with AddDate so the arithmetic stays
// in calendar space; formatting through a zoned instant and back can shift
// a day near DST transitions for users far from UTC.
func Expand(start time.Time, days WeekdaySet, weeks int) []time.Time {
	if days.Empty() || weeks <= 0 {
		return nil
	}

	cur := Midnight(start)
	var out []time.Time
	for i := 0; i < weeks*7; i++ {
		if days.Contains(cur.Weekday()) {
			out = append(out, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

// Midnight truncates t to local midnight of its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
