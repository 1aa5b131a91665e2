package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) startDelete() {
	m.deleteInput = newTextInput("Expense ID")
	m.deleteInput.ShowSuggestions = false
	m.deleteInput.Focus()
	m.currentView = viewDelete
}

func (m *Model) updateDeleteView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.currentView = viewMenu
		return nil
	case "enter":
		m.requestDelete()
		return nil
	}

	updated, cmd := m.deleteInput.Update(msg)
	m.deleteInput = updated
	return cmd
}

// requestDelete validates the id entry and asks for confirmation. A miss is
// a plain "not found" outcome, not an error.
func (m *Model) requestDelete() {
	raw := strings.TrimSpace(m.deleteInput.Value())
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		m.setStatus("Please enter a valid integer ID.", statusError, statusShortDuration)
		return
	}

	for _, r := range m.ledger.Records() {
		if r.ID == id {
			m.pendingDelete = r
			m.openConfirm(confirmDelete, viewDelete)
			return
		}
	}
	m.setStatus(fmt.Sprintf("No expense found with ID %d.", id), statusInfo, statusShortDuration)
}

// executeDelete runs the confirmed deletion and persists on success only.
func (m *Model) executeDelete() {
	removed, ok := m.ledger.Delete(m.pendingDelete.ID)
	if !ok {
		m.setStatus(fmt.Sprintf("No expense found with ID %d.", m.pendingDelete.ID), statusInfo, statusShortDuration)
		m.currentView = viewMenu
		return
	}
	m.index.Rebuild(m.ledger.Records())
	m.persist(fmt.Sprintf("Deleted expense #%d", removed.ID))
	m.currentView = viewMenu
}
