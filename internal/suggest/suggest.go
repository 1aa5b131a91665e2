// Package suggest builds queryable indexes over the expense history to power
// autocomplete in the entry forms.
package suggest

import "git.sr.ht/~jakintosh/outlay/internal/core"

// Index holds the unique category names seen in the collection, searchable by
// prefix.
type Index struct {
	categories *Trie
}

// NewIndex builds an index from the given records.
func NewIndex(records []core.Record) *Index {
	ix := &Index{}
	ix.Rebuild(records)
	return ix
}

// Rebuild replaces the index contents with the categories of the given
// records. The shell calls this after every mutation so suggestions track the
// live collection.
func (ix *Index) Rebuild(records []core.Record) {
	categories := NewTrie()
	for _, r := range records {
		if r.Category != "" {
			categories.Insert(r.Category)
		}
	}
	ix.categories = categories
}

// Categories returns every known category starting with the given prefix. An
// empty prefix returns the full sorted category list, which suits a filter
// field where the user has typed nothing yet.
func (ix *Index) Categories(prefix string) []string {
	return ix.categories.Find(prefix)
}
