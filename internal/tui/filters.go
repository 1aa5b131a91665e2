package tui

import (
	"fmt"
	"strings"
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/core"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// startFilter opens the filter form; withCategory selects list mode, summary
// mode skips the category field.
func (m *Model) startFilter(withCategory bool) {
	form := filterForm{
		categoryInput: newTextInput("Category (blank = all)"),
		startInput:    newTextInput("Start date YYYY-MM-DD (blank = none)"),
		endInput:      newTextInput("End date YYYY-MM-DD (blank = none)"),
		withCategory:  withCategory,
	}
	m.filter = form
	m.filterInputs()[0].Focus()
	if withCategory {
		m.refreshCategorySuggestions(&m.filter.categoryInput)
		m.currentView = viewListFilter
	} else {
		m.currentView = viewSummaryFilter
	}
}

// filterInputs returns the focusable inputs of the filter form in order.
func (m *Model) filterInputs() []*textinput.Model {
	if m.filter.withCategory {
		return []*textinput.Model{&m.filter.categoryInput, &m.filter.startInput, &m.filter.endInput}
	}
	return []*textinput.Model{&m.filter.startInput, &m.filter.endInput}
}

func (m *Model) updateFilterView(msg tea.KeyMsg) tea.Cmd {
	inputs := m.filterInputs()

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.currentView = viewMenu
		return nil
	case "tab":
		if m.filterCategoryFocused() && m.tryAcceptFilterSuggestion() {
			return nil
		}
		m.moveFilterFocus(1)
		return nil
	case "shift+tab":
		m.moveFilterFocus(-1)
		return nil
	case "enter":
		if m.filter.focused < len(inputs)-1 {
			m.moveFilterFocus(1)
			return nil
		}
		m.runFilter()
		return nil
	}

	input := inputs[m.filter.focused]
	updated, cmd := input.Update(msg)
	*input = updated
	if m.filterCategoryFocused() {
		m.refreshCategorySuggestions(&m.filter.categoryInput)
	}
	return cmd
}

func (m *Model) filterCategoryFocused() bool {
	return m.filter.withCategory && m.filter.focused == 0
}

func (m *Model) tryAcceptFilterSuggestion() bool {
	input := &m.filter.categoryInput
	suggestion := input.CurrentSuggestion()
	if suggestion == "" || strings.EqualFold(strings.TrimSpace(input.Value()), suggestion) {
		return false
	}
	input.SetValue(suggestion)
	input.CursorEnd()
	m.refreshCategorySuggestions(input)
	return true
}

func (m *Model) moveFilterFocus(delta int) {
	inputs := m.filterInputs()
	inputs[m.filter.focused].Blur()
	m.filter.focused += delta
	if m.filter.focused < 0 {
		m.filter.focused = 0
	}
	if m.filter.focused >= len(inputs) {
		m.filter.focused = len(inputs) - 1
	}
	inputs[m.filter.focused].Focus()
}

// runFilter validates the form and executes the list or summary operation.
// A malformed date keeps the user on the form, mirroring a prompt loop.
func (m *Model) runFilter() {
	start, err := parseOptionalDate(m.filter.startInput.Value())
	if err != nil {
		m.setStatus("Invalid start date. Use YYYY-MM-DD (example: 2026-01-08).", statusError, statusDuration)
		m.focusFilterInput(&m.filter.startInput)
		return
	}
	end, err := parseOptionalDate(m.filter.endInput.Value())
	if err != nil {
		m.setStatus("Invalid end date. Use YYYY-MM-DD (example: 2026-01-08).", statusError, statusDuration)
		m.focusFilterInput(&m.filter.endInput)
		return
	}

	if m.currentView == viewListFilter {
		filter := core.Filter{
			Category: strings.ToLower(strings.TrimSpace(m.filter.categoryInput.Value())),
			Start:    start,
			End:      end,
		}
		m.results = m.ledger.List(filter)
		m.resultsCursor = 0
		m.resultsOffset = 0
		m.currentView = viewListResults
		return
	}

	m.summary = m.ledger.Summarize(start, end)
	m.summaryRange = core.Filter{Start: start, End: end}
	m.currentView = viewSummaryResults
}

func (m *Model) focusFilterInput(target *textinput.Model) {
	inputs := m.filterInputs()
	for i, input := range inputs {
		input.Blur()
		if input == target {
			m.filter.focused = i
		}
	}
	inputs[m.filter.focused].Focus()
}

// parseOptionalDate treats a blank entry as "no constraint".
func parseOptionalDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(core.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	// "0001-01-01" parses to the zero time, which downstream would read as
	// an open bound; reject it rather than drop the constraint silently
	if parsed.IsZero() {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return core.Day(parsed), nil
}

func (m *Model) updateListResultsView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "up", "k":
		if m.resultsCursor > 0 {
			m.resultsCursor--
		}
		m.ensureResultsCursorVisible()
	case "down", "j":
		if m.resultsCursor < len(m.results)-1 {
			m.resultsCursor++
		}
		m.ensureResultsCursorVisible()
	case "esc", "enter", "q":
		m.currentView = viewMenu
	}
	return nil
}

func (m *Model) updateSummaryResultsView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "enter", "q":
		m.currentView = viewMenu
	}
	return nil
}

// ensureResultsCursorVisible adjusts the results offset to keep the cursor
// inside the visible window of the terminal.
func (m *Model) ensureResultsCursorVisible() {
	if len(m.results) == 0 {
		m.resultsCursor = 0
		m.resultsOffset = 0
		return
	}
	if m.resultsCursor < 0 {
		m.resultsCursor = 0
	}
	if m.resultsCursor >= len(m.results) {
		m.resultsCursor = len(m.results) - 1
	}

	// Title, column header, divider, trailing blank, count line, command hints
	const overhead = 6
	visible := m.windowHeight - overhead
	if visible <= 0 {
		visible = 1
	}

	if m.resultsCursor < m.resultsOffset {
		m.resultsOffset = m.resultsCursor
	}
	if m.resultsCursor >= m.resultsOffset+visible {
		m.resultsOffset = m.resultsCursor - visible + 1
	}
	maxOffset := max(len(m.results)-visible, 0)
	if m.resultsOffset > maxOffset {
		m.resultsOffset = maxOffset
	}
	if m.resultsOffset < 0 {
		m.resultsOffset = 0
	}
}
