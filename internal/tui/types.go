package tui

import (
	"time"

	"git.sr.ht/~jakintosh/outlay/internal/core"
	"git.sr.ht/~jakintosh/outlay/internal/store"
	"git.sr.ht/~jakintosh/outlay/internal/suggest"
	"github.com/charmbracelet/bubbles/textinput"
)

// Constants define UI behavior
const (
	statusDuration       = 5 * time.Second
	statusShortDuration  = 3 * time.Second
	maxSuggestionDisplay = 5
	maxNoteDisplay       = 25
)

// viewState represents the current screen being displayed
type viewState int

const (
	viewMenu viewState = iota
	viewAdd
	viewListFilter
	viewListResults
	viewSummaryFilter
	viewSummaryResults
	viewDelete
	viewConfirm
)

// confirmKind represents the type of confirmation being requested
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmQuit
)

// statusKind represents the type of status message being displayed
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// menuChoice identifies one entry of the main menu
type menuChoice int

const (
	choiceAdd menuChoice = iota
	choiceList
	choiceSummary
	choiceDelete
	choiceQuit
)

// addField identifies which input of the add form has focus
type addField int

const (
	addFieldAmount addField = iota
	addFieldCategory
	addFieldNote
	addFieldDate
)

// dateSegment represents which part of the date is selected
type dateSegment int

const (
	dateSegmentYear dateSegment = iota
	dateSegmentMonth
	dateSegmentDay
)

// Model is the main application state container for the TUI. It owns the one
// Ledger instance for the process lifetime and triggers persistence after
// every structural change.
type Model struct {
	ledger *core.Ledger
	store  *store.FileStore
	index  *suggest.Index

	loadIssues []store.Issue

	currentView viewState
	menuCursor  int

	add    addForm
	filter filterForm

	results       []core.Record
	resultsCursor int
	resultsOffset int
	summary       core.Summary
	summaryRange  core.Filter

	deleteInput textinput.Model

	pendingConfirm    confirmKind
	confirmReturnView viewState
	pendingDelete     core.Record

	windowHeight  int
	statusMessage string
	statusKind    statusKind
	statusExpiry  time.Time
	err           error
}

// addForm holds the state for the expense entry form
type addForm struct {
	amountInput   textinput.Model
	categoryInput textinput.Model
	noteInput     textinput.Model
	date          dateField
	focusedField  addField
}

// filterForm gathers the optional filter inputs shared by the list and
// summary screens. The category field only participates in list mode.
type filterForm struct {
	categoryInput textinput.Model
	startInput    textinput.Model
	endInput      textinput.Model
	focused       int
	withCategory  bool
}

// dateField manages a date with segment-based navigation
type dateField struct {
	year    int
	month   int
	day     int
	segment dateSegment
	buffer  string
}

// statusTick is sent periodically to update status message expiry
type statusTick struct{}
