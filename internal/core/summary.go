package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one per-category subtotal inside a summary.
type CategoryTotal struct {
	Category string
	Subtotal decimal.Decimal
}

// Summary aggregates spending over a date range.
type Summary struct {
	Total      decimal.Decimal
	ByCategory []CategoryTotal
}

// Summarize totals the records inside the date range (no category filter) and
// breaks the total down per category. Records without a category land in the
// "uncategorized" bucket. ByCategory is sorted by subtotal descending; equal
// subtotals keep first-seen order, so the breakdown is deterministic for a
// given collection order.
func (l *Ledger) Summarize(start, end time.Time) Summary {
	f := Filter{Start: start, End: end}

	total := decimal.Zero
	subtotals := make(map[string]decimal.Decimal)
	var order []string

	for _, r := range l.records {
		if !f.Matches(r) {
			continue
		}
		total = total.Add(r.Amount)

		category := r.Category
		if category == "" {
			category = Uncategorized
		}
		if _, seen := subtotals[category]; !seen {
			order = append(order, category)
		}
		subtotals[category] = subtotals[category].Add(r.Amount)
	}

	byCategory := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		byCategory = append(byCategory, CategoryTotal{
			Category: category,
			Subtotal: subtotals[category],
		})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Subtotal.GreaterThan(byCategory[j].Subtotal)
	})

	return Summary{Total: total, ByCategory: byCategory}
}
