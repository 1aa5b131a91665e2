// Package tui implements the interactive menu shell for the expense tracker.
// It gathers validated inputs, dispatches to the ledger, persists after every
// structural change, and renders results — invalid input never reaches the
// ledger core.
package tui

import (
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/core"
	"git.sr.ht/~jakintosh/outlay/internal/store"
	"git.sr.ht/~jakintosh/outlay/internal/suggest"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NewModel creates the shell over a loaded ledger. Load issues are surfaced
// on the menu screen rather than treated as errors.
func NewModel(ledger *core.Ledger, fileStore *store.FileStore, index *suggest.Index, loadIssues []store.Issue) *Model {
	m := &Model{
		ledger:      ledger,
		store:       fileStore,
		index:       index,
		loadIssues:  loadIssues,
		currentView: viewMenu,
		deleteInput: newTextInput("Expense ID"),
	}
	m.resetAddForm()
	return m
}

// Init initializes the model and returns the initial command
func (m *Model) Init() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
}

// Update handles incoming messages and updates the model state
func (m *Model) Update(msg tea.Msg) (updated tea.Model, cmd tea.Cmd) {
	defer func() {
		if recovered := recover(); recovered != nil {
			recoveredErr := fmt.Errorf("unexpected internal error: %v", recovered)
			if saveErr := m.store.Save(m.ledger.Records()); saveErr != nil {
				recoveredErr = fmt.Errorf("%w (failed to persist expenses: %v)", recoveredErr, saveErr)
			} else {
				recoveredErr = fmt.Errorf("%w (expenses were saved)", recoveredErr)
			}
			m.err = recoveredErr
			updated = m
			cmd = nil
		}
	}()

	if m.err != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.ensureResultsCursorVisible()
		return m, nil
	case statusTick:
		if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
			m.statusMessage = ""
			m.statusExpiry = time.Time{}
		}
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg { return statusTick{} })
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View renders the current view based on the model state
func (m *Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	switch m.currentView {
	case viewMenu:
		return m.renderMenuView()
	case viewAdd:
		return m.renderAddView()
	case viewListFilter, viewSummaryFilter:
		return m.renderFilterView()
	case viewListResults:
		return m.renderListResultsView()
	case viewSummaryResults:
		return m.renderSummaryView()
	case viewDelete:
		return m.renderDeleteView()
	case viewConfirm:
		return m.renderConfirmView()
	default:
		return "Unknown view"
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case viewMenu:
		return m, m.updateMenuView(msg)
	case viewAdd:
		return m, m.updateAddView(msg)
	case viewListFilter, viewSummaryFilter:
		return m, m.updateFilterView(msg)
	case viewListResults:
		return m, m.updateListResultsView(msg)
	case viewSummaryResults:
		return m, m.updateSummaryResultsView(msg)
	case viewDelete:
		return m, m.updateDeleteView(msg)
	case viewConfirm:
		return m, m.updateConfirmView(msg)
	default:
		return m, nil
	}
}

// persist writes the collection and reports failures as a visible warning;
// the in-memory state stays authoritative either way.
func (m *Model) persist(success string) {
	if err := m.store.Save(m.ledger.Records()); err != nil {
		m.setStatus(fmt.Sprintf("%s, but saving failed: %v", success, err), statusError, statusDuration)
		return
	}
	m.setStatus(success, statusSuccess, statusShortDuration)
}

// setStatus sets a temporary status message with the given duration and kind
func (m *Model) setStatus(message string, kind statusKind, duration time.Duration) {
	m.statusMessage = message
	m.statusKind = kind
	m.statusExpiry = time.Now().Add(duration)
}

// statusLine returns the current status message if it hasn't expired
func (m *Model) statusLine() string {
	if m.statusMessage == "" {
		return ""
	}
	if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
		return ""
	}
	return formatStatus(m.statusMessage, m.statusKind)
}

// openConfirm switches to the confirmation view for the specified action
func (m *Model) openConfirm(kind confirmKind, returnView viewState) {
	m.pendingConfirm = kind
	m.confirmReturnView = returnView
	m.currentView = viewConfirm
}

func (m *Model) updateConfirmView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter", "y":
		switch m.pendingConfirm {
		case confirmDelete:
			m.executeDelete()
		case confirmQuit:
			return tea.Quit
		}
	case "esc", "n":
		m.currentView = m.confirmReturnView
	}
	m.pendingConfirm = confirmNone
	return nil
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40
	ti.ShowSuggestions = true
	return ti
}
