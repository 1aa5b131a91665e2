package core

import "time"

// Filter is a predicate combining optional category and date-range
// constraints. Zero values mean "no constraint": an empty Category matches
// every category, a zero Start or End leaves that bound open. Present
// constraints are ANDed.
type Filter struct {
	Category string    // exact match; the shell lowercases before building a filter
	Start    time.Time // inclusive lower bound
	End      time.Time // inclusive upper bound
}

// Matches reports whether a record passes the filter. A record with a zero
// date always fails; well-formed collections never contain one, but corrupted
// data must drop out here rather than reach the sort.
func (f Filter) Matches(r Record) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if r.Date.IsZero() {
		return false
	}
	if !f.Start.IsZero() && r.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && r.Date.After(f.End) {
		return false
	}
	return true
}
