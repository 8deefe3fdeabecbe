package dino2

import (
	"sort"
	"time"
)

// NewDate returns the given calendar date at UTC midnight. All dates handled
// by this package are built through this function so they compare equal and
// can be used as map keys.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight truncates t to its calendar date at UTC midnight.
func Midnight(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateSet is a set of calendar dates at UTC midnight.
type DateSet map[time.Time]bool

func (s DateSet) Contains(d time.Time) bool {
	return s[d]
}

// Intersect returns a new set containing the dates present in both sets.
func (s DateSet) Intersect(other DateSet) DateSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := DateSet{}
	for d := range small {
		if large[d] {
			out[d] = true
		}
	}
	return out
}

// Union returns a new set containing the dates present in either set.
func (s DateSet) Union(other DateSet) DateSet {
	out := make(DateSet, len(s)+len(other))
	for d := range s {
		out[d] = true
	}
	for d := range other {
		out[d] = true
	}
	return out
}

// Sorted returns the dates of the set in ascending order.
func (s DateSet) Sorted() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
