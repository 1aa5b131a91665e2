package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// renderMenuView displays the main menu with collection and load information
func (m *Model) renderMenuView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Expense Tracker --\n")
	for _, line := range m.loadSummaryLines() {
		fmt.Fprintf(&b, "%s\n", line)
	}
	b.WriteString("\n")

	for i, label := range menuLabels {
		cursor := " "
		if i == m.menuCursor {
			cursor = formatCursor(">")
		}
		fmt.Fprintf(&b, "%s %d) %s\n", cursor, i+1, label)
	}
	b.WriteString("\n")

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "%s\n\n", msg)
	}

	b.WriteString("[1-5]choose  [enter]select  [q]uit")
	return b.String()
}

// loadSummaryLines describes the data file and any problems found loading it
func (m *Model) loadSummaryLines() []string {
	count := m.ledger.Len()
	label := "expenses"
	if count == 1 {
		label = "expense"
	}
	lines := []string{fmt.Sprintf("Data file: %s • %d %s", m.store.Path(), count, label)}

	if len(m.loadIssues) == 0 {
		return append(lines, formatNoIssues("Load issues: none"))
	}
	first := m.loadIssues[0]
	where := fmt.Sprintf("document %d", first.Index)
	if first.Index < 0 {
		where = "file"
	}
	if len(m.loadIssues) == 1 {
		return append(lines, formatIssues(fmt.Sprintf("Load issue: [%s] %s", where, first.Message)))
	}
	return append(lines, formatIssues(fmt.Sprintf("Load issues: %d (first: [%s] %s)", len(m.loadIssues), where, first.Message)))
}

// renderAddView displays the expense entry form
func (m *Model) renderAddView() string {
	var b strings.Builder
	b.WriteString("-- Add Expense --\n\n")

	fmt.Fprintf(&b, "Amount   %s\n", m.add.amountInput.View())

	fmt.Fprintf(&b, "Category %s", m.add.categoryInput.View())
	if m.add.focusedField == addFieldCategory {
		b.WriteString(renderSuggestionList(m.add.categoryInput))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Note     %s\n", m.add.noteInput.View())
	fmt.Fprintf(&b, "Date     %s\n\n", m.add.date.display(m.add.focusedField == addFieldDate))

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "%s\n\n", msg)
	}

	b.WriteString("[tab]next  [shift+tab]prev  [enter]confirm on date  [esc]cancel")
	return b.String()
}

// renderFilterView displays the list/summary filter form
func (m *Model) renderFilterView() string {
	var b strings.Builder
	if m.currentView == viewListFilter {
		b.WriteString("-- List Expenses --\n\n")
		fmt.Fprintf(&b, "Category %s", m.filter.categoryInput.View())
		if m.filterCategoryFocused() {
			b.WriteString(renderSuggestionList(m.filter.categoryInput))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("-- Summary --\n\n")
	}

	fmt.Fprintf(&b, "From     %s\n", m.filter.startInput.View())
	fmt.Fprintf(&b, "To       %s\n\n", m.filter.endInput.View())

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "%s\n\n", msg)
	}

	b.WriteString("[tab]next  [shift+tab]prev  [enter]run  [esc]back")
	return b.String()
}

// renderListResultsView displays the filtered expense table
func (m *Model) renderListResultsView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Expenses (%d matched) --\n\n", len(m.results))

	if len(m.results) == 0 {
		b.WriteString("No expenses matched your filters.\n\n")
		b.WriteString("[esc]back")
		return b.String()
	}

	b.WriteString("    ID  Date        Amount    Category      Note\n")
	b.WriteString("    --  ----------  --------  ------------  -------------------------\n")

	const overhead = 6
	visible := m.windowHeight - overhead
	if visible <= 0 {
		visible = len(m.results)
	}
	end := min(m.resultsOffset+visible, len(m.results))

	if m.resultsOffset > 0 {
		fmt.Fprintf(&b, "    %s\n", formatHint(fmt.Sprintf("... %d more above", m.resultsOffset)))
	}
	for i := m.resultsOffset; i < end; i++ {
		r := m.results[i]
		cursor := " "
		if i == m.resultsCursor {
			cursor = formatCursor(">")
		}
		note := r.Note
		if len(note) > maxNoteDisplay {
			note = note[:maxNoteDisplay-3] + "..."
		}
		fmt.Fprintf(&b, "%s %5d  %s  %8s  %-12s  %s\n",
			cursor, r.ID, r.Date.Format("2006-01-02"), r.Amount.StringFixed(2), r.Category, note)
	}
	if end < len(m.results) {
		fmt.Fprintf(&b, "    %s\n", formatHint(fmt.Sprintf("... %d more below", len(m.results)-end)))
	}

	b.WriteString("\n[↑/↓]scroll  [esc]back")
	return b.String()
}

// renderSummaryView displays the spending totals
func (m *Model) renderSummaryView() string {
	var b strings.Builder
	b.WriteString("-- Summary --\n")
	b.WriteString(m.summaryRangeLine())
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s\n\n", formatTotal(fmt.Sprintf("Total spent: $%s", m.summary.Total.StringFixed(2))))

	if len(m.summary.ByCategory) == 0 {
		b.WriteString("No category totals available.\n\n")
	} else {
		b.WriteString("By category:\n")
		for _, ct := range m.summary.ByCategory {
			fmt.Fprintf(&b, "  %-14s $%s\n", ct.Category, ct.Subtotal.StringFixed(2))
		}
		b.WriteString("\n")
	}

	b.WriteString("[esc]back")
	return b.String()
}

// summaryRangeLine describes the date range the summary covers
func (m *Model) summaryRangeLine() string {
	start, end := m.summaryRange.Start, m.summaryRange.End
	switch {
	case start.IsZero() && end.IsZero():
		return "All dates\n"
	case start.IsZero():
		return fmt.Sprintf("Through %s\n", end.Format("2006-01-02"))
	case end.IsZero():
		return fmt.Sprintf("From %s\n", start.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

// renderDeleteView displays the deletion prompt
func (m *Model) renderDeleteView() string {
	var b strings.Builder
	b.WriteString("-- Delete Expense --\n\n")
	fmt.Fprintf(&b, "ID %s\n\n", m.deleteInput.View())

	if msg := m.statusLine(); msg != "" {
		fmt.Fprintf(&b, "%s\n\n", msg)
	}

	b.WriteString("[enter]delete  [esc]back")
	return b.String()
}

// renderConfirmView displays the confirmation dialog
func (m *Model) renderConfirmView() string {
	var b strings.Builder
	switch m.pendingConfirm {
	case confirmDelete:
		r := m.pendingDelete
		fmt.Fprintf(&b, "Delete expense #%d (%s, $%s on %s)?\n\n",
			r.ID, r.Category, r.Amount.StringFixed(2), r.Date.Format("2006-01-02"))
	case confirmQuit:
		b.WriteString("Quit the expense tracker?\n\n")
	}
	b.WriteString("[enter]confirm  [esc]cancel")
	return b.String()
}

// renderSuggestionList displays autocomplete suggestions below an input field
func renderSuggestionList(input textinput.Model) string {
	matches := input.MatchedSuggestions()
	if len(matches) <= 1 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	display := min(len(matches), maxSuggestionDisplay)
	for i := 0; i < display; i++ {
		cursor := " "
		if i == input.CurrentSuggestionIndex() {
			cursor = ">"
		}
		fmt.Fprintf(&b, "      %s %s\n", cursor, matches[i])
	}
	if len(matches) > display {
		fmt.Fprintf(&b, "      ... and %d more\n", len(matches)-display)
	}
	return b.String()
}
