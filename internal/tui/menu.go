package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// menuLabels are shown in menu order; menuChoice indexes into this list.
var menuLabels = []string{
	"Add expense",
	"List expenses",
	"Summary",
	"Delete expense",
	"Quit",
}

func (m *Model) updateMenuView(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(menuLabels)-1 {
			m.menuCursor++
		}
	case "1", "2", "3", "4", "5":
		m.menuCursor = int(msg.Runes[0] - '1')
		return m.selectMenuChoice(menuChoice(m.menuCursor))
	case "enter":
		return m.selectMenuChoice(menuChoice(m.menuCursor))
	case "q":
		m.openConfirm(confirmQuit, viewMenu)
	}
	return nil
}

func (m *Model) selectMenuChoice(choice menuChoice) tea.Cmd {
	switch choice {
	case choiceAdd:
		m.startAdd()
	case choiceList:
		if m.ledger.Len() == 0 {
			m.setStatus("No expenses yet.", statusInfo, statusShortDuration)
			return nil
		}
		m.startFilter(true)
	case choiceSummary:
		if m.ledger.Len() == 0 {
			m.setStatus("No expenses to summarize.", statusInfo, statusShortDuration)
			return nil
		}
		m.startFilter(false)
	case choiceDelete:
		if m.ledger.Len() == 0 {
			m.setStatus("No expenses to delete.", statusInfo, statusShortDuration)
			return nil
		}
		m.startDelete()
	case choiceQuit:
		m.openConfirm(confirmQuit, viewMenu)
	}
	return nil
}
