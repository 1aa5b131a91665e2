package suggest

import (
	"reflect"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/core"
	"github.com/shopspring/decimal"
)

func record(id int, category string) core.Record {
	return core.Record{
		ID:       id,
		Amount:   decimal.New(100, -2),
		Category: category,
		Date:     time.Date(2026, time.January, id, 0, 0, 0, 0, time.UTC),
	}
}

func TestTrieFindsByPrefix(t *testing.T) {
	trie := NewTrie()
	for _, word := range []string{"food", "fuel", "rent"} {
		trie.Insert(word)
	}

	if got := trie.Find("f"); !reflect.DeepEqual(got, []string{"food", "fuel"}) {
		t.Fatalf("expected [food fuel], got %v", got)
	}
	if got := trie.Find("re"); !reflect.DeepEqual(got, []string{"rent"}) {
		t.Fatalf("expected [rent], got %v", got)
	}
	if got := trie.Find("x"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestTrieIsCaseInsensitive(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Food")
	if got := trie.Find("FO"); !reflect.DeepEqual(got, []string{"food"}) {
		t.Fatalf("expected folded match [food], got %v", got)
	}
}

func TestIndexDeduplicatesCategories(t *testing.T) {
	ix := NewIndex([]core.Record{
		record(1, "food"),
		record(2, "food"),
		record(3, "gas"),
	})
	if got := ix.Categories(""); !reflect.DeepEqual(got, []string{"food", "gas"}) {
		t.Fatalf("expected [food gas], got %v", got)
	}
}

func TestIndexSkipsEmptyCategories(t *testing.T) {
	ix := NewIndex([]core.Record{record(1, "")})
	if got := ix.Categories(""); len(got) != 0 {
		t.Fatalf("expected no categories, got %v", got)
	}
}

func TestRebuildTracksMutations(t *testing.T) {
	ix := NewIndex([]core.Record{record(1, "food")})
	ix.Rebuild([]core.Record{record(1, "food"), record(2, "travel")})
	if got := ix.Categories("t"); !reflect.DeepEqual(got, []string{"travel"}) {
		t.Fatalf("expected [travel] after rebuild, got %v", got)
	}

	ix.Rebuild(nil)
	if got := ix.Categories(""); len(got) != 0 {
		t.Fatalf("expected empty index after rebuild with no records, got %v", got)
	}
}
