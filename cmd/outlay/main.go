package main

import (
	"log"

	"git.sr.ht/~jakintosh/command-go/pkg/args"
	"git.sr.ht/~jakintosh/outlay/internal/core"
	"git.sr.ht/~jakintosh/outlay/internal/store"
	"git.sr.ht/~jakintosh/outlay/internal/suggest"
	"git.sr.ht/~jakintosh/outlay/internal/tui"
	"git.sr.ht/~jakintosh/outlay/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultDataFile = "expenses.json"

var config = &args.Config{
	Author:  "jakintosh",
	Version: version.Data().Version,
	HelpOption: &args.HelpOption{
		Short: 'h',
		Long:  "help",
	},
}

var root = &args.Command{
	Name:   "outlay",
	Config: config,
	Help:   "Track personal expenses in a terminal UI.",
	Operands: []args.Operand{
		{
			Name: "data-file",
			Help: "path to the expense data file (default: expenses.json)",
		},
	},
	Handler: func(i *args.Input) error {

		// read operands
		dataFile := i.GetOperand("data-file")
		if dataFile == "" {
			dataFile = defaultDataFile
		}

		// Load the expense collection; malformed data degrades to empty and
		// surfaces as load issues in the UI
		fileStore := store.New(dataFile)
		records, issues := fileStore.Load()

		ledger := core.NewLedger(records)
		index := suggest.NewIndex(records)

		// Create and start the TUI
		model := tui.NewModel(ledger, fileStore, index, issues)
		program := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := program.Run(); err != nil {
			log.Fatalf("TUI error: %v", err)
		}

		return nil
	},
}

func main() {
	root.Parse()
}
