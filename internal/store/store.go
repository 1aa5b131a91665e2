// Package store persists the expense collection as a flat JSON file. Loading
// degrades rather than fails: missing or malformed data yields an empty
// collection plus per-document issues, never an error.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/core"
	"github.com/shopspring/decimal"
)

// Issue captures a non-fatal problem encountered while reading stored data.
type Issue struct {
	Index   int // position of the offending document, -1 for file-level issues
	Message string
}

// FileStore reads and writes one expense data file.
type FileStore struct {
	path string
}

// New creates a store backed by the given file path. The file does not need
// to exist yet.
func New(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// document is the persisted shape of one record. The array in the file keeps
// insertion order; display ordering is the ledger's concern.
type document struct {
	ID       int     `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Date     string  `json:"date"`
}

// Load reads the full collection. An absent file is an empty collection. An
// unreadable file or a non-array root degrades to empty with a file-level
// issue. Documents that fail strict parsing (non-integer id, malformed date,
// non-positive amount) are skipped individually and reported.
func (s *FileStore) Load() ([]core.Record, []Issue) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []Issue{{Index: -1, Message: fmt.Sprintf("read data file: %v", err)}}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, []Issue{{Index: -1, Message: fmt.Sprintf("data file is not a record array: %v", err)}}
	}

	var (
		records []core.Record
		issues  []Issue
	)
	for i, element := range raw {
		record, err := parseDocument(element)
		if err != nil {
			issues = append(issues, Issue{Index: i, Message: err.Error()})
			continue
		}
		records = append(records, record)
	}
	return records, issues
}

// Save serializes the full collection in insertion order, overwriting the
// file. The caller treats a failure as a warning; the in-memory collection
// stays authoritative for the rest of the session.
func (s *FileStore) Save(records []core.Record) error {
	documents := make([]document, 0, len(records))
	for _, r := range records {
		documents = append(documents, document{
			ID:       r.ID,
			Amount:   r.Amount.InexactFloat64(),
			Category: r.Category,
			Note:     r.Note,
			Date:     r.Date.Format(core.DateLayout),
		})
	}

	data, err := json.MarshalIndent(documents, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// parseDocument converts one stored document into a strict record.
func parseDocument(element json.RawMessage) (core.Record, error) {
	var doc document
	if err := json.Unmarshal(element, &doc); err != nil {
		return core.Record{}, fmt.Errorf("malformed document: %v", err)
	}
	if doc.ID <= 0 {
		return core.Record{}, fmt.Errorf("invalid id %d", doc.ID)
	}

	amount := decimal.NewFromFloat(doc.Amount).Round(2)
	if !amount.IsPositive() {
		return core.Record{}, fmt.Errorf("invalid amount %v", doc.Amount)
	}

	date, err := time.Parse(core.DateLayout, strings.TrimSpace(doc.Date))
	if err != nil {
		return core.Record{}, fmt.Errorf("invalid date %q", doc.Date)
	}

	return core.Record{
		ID:       doc.ID,
		Amount:   amount,
		Category: strings.ToLower(strings.TrimSpace(doc.Category)),
		Note:     doc.Note,
		Date:     core.Day(date),
	}, nil
}
