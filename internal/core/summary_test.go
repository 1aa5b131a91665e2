package core

import (
	"testing"
	"time"
)

func TestSummarizeWorkedExample(t *testing.T) {
	l := NewLedger(testRecords())
	summary := l.Summarize(time.Time{}, time.Time{})

	if got := summary.Total.StringFixed(2); got != "15.00" {
		t.Fatalf("expected total 15.00, got %s", got)
	}
	if len(summary.ByCategory) != 2 {
		t.Fatalf("expected 2 category buckets, got %d", len(summary.ByCategory))
	}
	if summary.ByCategory[0].Category != "food" || summary.ByCategory[0].Subtotal.StringFixed(2) != "10.00" {
		t.Fatalf("expected food 10.00 first, got %s %s",
			summary.ByCategory[0].Category, summary.ByCategory[0].Subtotal.StringFixed(2))
	}
	if summary.ByCategory[1].Category != "gas" || summary.ByCategory[1].Subtotal.StringFixed(2) != "5.00" {
		t.Fatalf("expected gas 5.00 second, got %s %s",
			summary.ByCategory[1].Category, summary.ByCategory[1].Subtotal.StringFixed(2))
	}
}

func TestSummarizeSubtotalsSumToTotal(t *testing.T) {
	l := NewLedger([]Record{
		{ID: 1, Amount: amount("10.10"), Category: "food", Date: day(2026, time.January, 1)},
		{ID: 2, Amount: amount("0.20"), Category: "gas", Date: day(2026, time.January, 2)},
		{ID: 3, Amount: amount("0.30"), Category: "food", Date: day(2026, time.January, 3)},
		{ID: 4, Amount: amount("99.99"), Category: "rent", Date: day(2026, time.January, 4)},
	})
	summary := l.Summarize(time.Time{}, time.Time{})

	sum := amount("0")
	for _, ct := range summary.ByCategory {
		sum = sum.Add(ct.Subtotal)
	}
	if !sum.Equal(summary.Total) {
		t.Fatalf("subtotals %s do not sum to total %s", sum, summary.Total)
	}
	if got := summary.Total.StringFixed(2); got != "110.59" {
		t.Fatalf("expected decimal-exact total 110.59, got %s", got)
	}
}

func TestSummarizeRespectsDateRange(t *testing.T) {
	l := NewLedger([]Record{
		{ID: 1, Amount: amount("1.00"), Category: "a", Date: day(2026, time.January, 1)},
		{ID: 2, Amount: amount("2.00"), Category: "b", Date: day(2026, time.February, 1)},
		{ID: 3, Amount: amount("4.00"), Category: "a", Date: day(2026, time.March, 1)},
	})
	summary := l.Summarize(day(2026, time.January, 15), day(2026, time.February, 15))

	if got := summary.Total.StringFixed(2); got != "2.00" {
		t.Fatalf("expected only the february record in the total, got %s", got)
	}
	if len(summary.ByCategory) != 1 || summary.ByCategory[0].Category != "b" {
		t.Fatalf("expected a single b bucket, got %v", summary.ByCategory)
	}
}

func TestSummarizeOrdersBySubtotalDescending(t *testing.T) {
	l := NewLedger([]Record{
		{ID: 1, Amount: amount("5.00"), Category: "gas", Date: day(2026, time.January, 1)},
		{ID: 2, Amount: amount("20.00"), Category: "rent", Date: day(2026, time.January, 2)},
		{ID: 3, Amount: amount("10.00"), Category: "food", Date: day(2026, time.January, 3)},
	})
	summary := l.Summarize(time.Time{}, time.Time{})

	want := []string{"rent", "food", "gas"}
	for i, ct := range summary.ByCategory {
		if ct.Category != want[i] {
			t.Fatalf("expected category order %v, got position %d = %s", want, i, ct.Category)
		}
	}
}

func TestSummarizeEqualSubtotalsKeepFirstSeenOrder(t *testing.T) {
	l := NewLedger([]Record{
		{ID: 1, Amount: amount("5.00"), Category: "zoo", Date: day(2026, time.January, 1)},
		{ID: 2, Amount: amount("5.00"), Category: "art", Date: day(2026, time.January, 2)},
	})
	summary := l.Summarize(time.Time{}, time.Time{})

	if summary.ByCategory[0].Category != "zoo" || summary.ByCategory[1].Category != "art" {
		t.Fatalf("expected first-seen tie-break [zoo art], got [%s %s]",
			summary.ByCategory[0].Category, summary.ByCategory[1].Category)
	}
}

func TestSummarizeBucketsEmptyCategoryAsUncategorized(t *testing.T) {
	l := NewLedger([]Record{
		{ID: 1, Amount: amount("3.00"), Date: day(2026, time.January, 1)},
	})
	summary := l.Summarize(time.Time{}, time.Time{})

	if len(summary.ByCategory) != 1 || summary.ByCategory[0].Category != Uncategorized {
		t.Fatalf("expected a single %q bucket, got %v", Uncategorized, summary.ByCategory)
	}
}

func TestSummarizeEmptyCollection(t *testing.T) {
	l := NewLedger(nil)
	summary := l.Summarize(time.Time{}, time.Time{})
	if !summary.Total.IsZero() {
		t.Fatalf("expected zero total, got %s", summary.Total)
	}
	if len(summary.ByCategory) != 0 {
		t.Fatalf("expected no category buckets, got %v", summary.ByCategory)
	}
}
