package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger owns the in-memory record collection. The shell holds one instance
// for the process lifetime and persists the collection after every mutation;
// the ledger itself never touches storage.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger over an already-parsed record collection.
func NewLedger(records []Record) *Ledger {
	return &Ledger{records: append([]Record(nil), records...)}
}

// Len returns the number of records in the collection.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the collection in insertion order.
func (l *Ledger) Records() []Record {
	return append([]Record(nil), l.records...)
}

// NextID returns 1 for an empty collection, otherwise the highest existing
// id plus one. Records carrying a non-positive id are treated as absent;
// corrupted data must not poison id assignment. Note this reuses an id when
// the max-id record was deleted.
func (l *Ledger) NextID() int {
	maxID := 0
	for _, r := range l.records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

// Add constructs a record with the next id and appends it. Inputs are
// pre-validated by the shell: amount > 0, category non-empty and lowercased,
// date a valid calendar day. The caller persists the collection immediately
// after; a crash in between loses the addition.
func (l *Ledger) Add(amount decimal.Decimal, category, note string, date time.Time) Record {
	record := Record{
		ID:       l.NextID(),
		Amount:   amount.Round(2),
		Category: category,
		Note:     note,
		Date:     Day(date),
	}
	l.records = append(l.records, record)
	return record
}

// List returns the records matching the filter, newest date first and higher
// id first within a date. Id uniqueness makes the ordering a strict total
// order.
func (l *Ledger) List(f Filter) []Record {
	var matched []Record
	for _, r := range l.records {
		if f.Matches(r) {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].ID > matched[j].ID
	})
	return matched
}

// Delete removes the record with the given id and returns it. A miss leaves
// the collection unchanged and returns false; repeating a delete is a no-op.
// The caller persists only on success.
func (l *Ledger) Delete(id int) (Record, bool) {
	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return r, true
		}
	}
	return Record{}, false
}
