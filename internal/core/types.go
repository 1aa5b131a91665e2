// Package core implements the expense ledger: the in-memory record collection
// and its filtering, sorting, aggregation, and id assignment rules.
package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used everywhere a date crosses a
// package boundary (persisted documents, user input, display).
const DateLayout = "2006-01-02"

// Uncategorized is the sentinel bucket for records without a category.
const Uncategorized = "uncategorized"

// Record is a single expense entry. Records are immutable once created;
// removal is the only other mutation the ledger performs.
type Record struct {
	ID       int             // positive, unique, monotonically assigned
	Amount   decimal.Decimal // strictly positive, two fractional digits
	Category string          // non-empty, lowercase
	Note     string          // free text, may be empty
	Date     time.Time       // calendar date at midnight, no time component
}

// Day truncates a time to its calendar date at UTC midnight. Every date in
// the system goes through here, so range comparisons between records and
// filter bounds are calendar comparisons regardless of the local zone.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
