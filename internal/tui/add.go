package tui

import (
	"fmt"
	"strings"
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// resetAddForm clears the expense entry form; the date defaults to today so
// a blank entry means "now".
func (m *Model) resetAddForm() {
	form := addForm{
		amountInput:   newTextInput("Amount (e.g. 12.50)"),
		categoryInput: newTextInput("Category (e.g. food, gas, rent)"),
		noteInput:     newTextInput("Note (optional)"),
		focusedField:  addFieldAmount,
	}
	form.date.setTime(time.Now())
	form.amountInput.Focus()
	m.add = form
}

func (m *Model) startAdd() {
	m.resetAddForm()
	m.refreshCategorySuggestions(&m.add.categoryInput)
	m.currentView = viewAdd
}

func (m *Model) updateAddView(msg tea.KeyMsg) tea.Cmd {
	// Date-specific handling before global shortcuts
	if m.add.focusedField == addFieldDate {
		if m.add.date.handleKey(msg) {
			return nil
		}
	}

	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.resetAddForm()
		m.currentView = viewMenu
		return nil
	case "shift+tab":
		m.retreatAddFocus()
		return nil
	case "tab":
		if !m.tryAcceptCategorySuggestion() {
			m.advanceAddFocus()
		}
		return nil
	case "enter":
		if m.add.focusedField == addFieldDate {
			m.confirmAdd()
		} else {
			m.advanceAddFocus()
		}
		return nil
	}

	cmd := m.updateFocusedAddInput(msg)
	if m.add.focusedField == addFieldCategory {
		m.refreshCategorySuggestions(&m.add.categoryInput)
	}
	return cmd
}

func (m *Model) advanceAddFocus() {
	switch m.add.focusedField {
	case addFieldAmount:
		if !m.evaluateAmountInput() {
			return
		}
		m.add.amountInput.Blur()
		m.add.focusedField = addFieldCategory
		m.add.categoryInput.Focus()
		m.refreshCategorySuggestions(&m.add.categoryInput)
	case addFieldCategory:
		m.add.categoryInput.Blur()
		m.add.focusedField = addFieldNote
		m.add.noteInput.Focus()
	case addFieldNote:
		m.add.noteInput.Blur()
		m.add.focusedField = addFieldDate
	case addFieldDate:
		m.confirmAdd()
	}
}

func (m *Model) retreatAddFocus() {
	switch m.add.focusedField {
	case addFieldCategory:
		m.add.categoryInput.Blur()
		m.add.focusedField = addFieldAmount
		m.add.amountInput.Focus()
	case addFieldNote:
		m.add.noteInput.Blur()
		m.add.focusedField = addFieldCategory
		m.add.categoryInput.Focus()
	case addFieldDate:
		m.add.focusedField = addFieldNote
		m.add.noteInput.Focus()
	}
}

func (m *Model) updateFocusedAddInput(msg tea.KeyMsg) tea.Cmd {
	var input *textinput.Model
	switch m.add.focusedField {
	case addFieldAmount:
		input = &m.add.amountInput
	case addFieldCategory:
		input = &m.add.categoryInput
	case addFieldNote:
		input = &m.add.noteInput
	default:
		return nil
	}
	updated, cmd := input.Update(msg)
	*input = updated
	return cmd
}

// evaluateAmountInput normalizes the amount entry in place. Returns true if
// the field is empty or evaluates cleanly.
func (m *Model) evaluateAmountInput() bool {
	value := strings.TrimSpace(m.add.amountInput.Value())
	if value == "" {
		return true
	}
	evaluated, err := util.EvaluateAmount(value)
	if err != nil {
		m.setStatus(fmt.Sprintf("Invalid amount: %v", err), statusError, statusDuration)
		return false
	}
	m.add.amountInput.SetValue(evaluated)
	m.add.amountInput.CursorEnd()
	return true
}

func (m *Model) tryAcceptCategorySuggestion() bool {
	if m.add.focusedField != addFieldCategory {
		return false
	}
	input := &m.add.categoryInput
	suggestion := input.CurrentSuggestion()
	if suggestion == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(input.Value()), suggestion) {
		return false
	}
	input.SetValue(suggestion)
	input.CursorEnd()
	m.refreshCategorySuggestions(input)
	return true
}

func (m *Model) refreshCategorySuggestions(input *textinput.Model) {
	input.SetSuggestions(m.index.Categories(strings.TrimSpace(input.Value())))
}

// confirmAdd validates the form, appends the expense, and persists. Invalid
// fields keep the user on the form with an error status — the ledger never
// sees bad values.
func (m *Model) confirmAdd() {
	if !m.evaluateAmountInput() {
		m.focusAddField(addFieldAmount)
		return
	}
	amountStr := strings.TrimSpace(m.add.amountInput.Value())
	if amountStr == "" {
		m.setStatus("Amount is required", statusError, statusShortDuration)
		m.focusAddField(addFieldAmount)
		return
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil || !amount.IsPositive() {
		m.setStatus("Amount must be greater than 0", statusError, statusShortDuration)
		m.focusAddField(addFieldAmount)
		return
	}

	category := strings.ToLower(strings.TrimSpace(m.add.categoryInput.Value()))
	if category == "" {
		m.setStatus("Category is required", statusError, statusShortDuration)
		m.focusAddField(addFieldCategory)
		return
	}

	date := m.add.date.time()
	if date.IsZero() {
		m.setStatus("Invalid date", statusError, statusShortDuration)
		m.add.focusedField = addFieldDate
		return
	}

	note := strings.TrimSpace(m.add.noteInput.Value())

	record := m.ledger.Add(amount, category, note, date)
	m.index.Rebuild(m.ledger.Records())
	m.persist(fmt.Sprintf("Added expense #%d", record.ID))

	m.resetAddForm()
	m.currentView = viewMenu
}

func (m *Model) focusAddField(field addField) {
	m.add.amountInput.Blur()
	m.add.categoryInput.Blur()
	m.add.noteInput.Blur()
	m.add.focusedField = field
	switch field {
	case addFieldAmount:
		m.add.amountInput.Focus()
	case addFieldCategory:
		m.add.categoryInput.Focus()
	case addFieldNote:
		m.add.noteInput.Focus()
	}
}
