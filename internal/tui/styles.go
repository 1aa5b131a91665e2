package tui

import "github.com/charmbracelet/lipgloss"

// Color definitions for the TUI
var (
	// Status message colors
	successColor = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	infoColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue

	// UI element colors
	cursorColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true) // Bright magenta
	totalColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true) // Cyan
	noIssuesColor = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            // Green
	issuesColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // Red
	dimmedColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // Dark grey
)

// formatStatus returns a colored status message based on the status kind
func formatStatus(message string, kind statusKind) string {
	switch kind {
	case statusSuccess:
		return successColor.Render(message)
	case statusError:
		return errorColor.Render(message)
	case statusInfo:
		return infoColor.Render(message)
	default:
		return message
	}
}

// formatCursor returns a colored cursor marker
func formatCursor(marker string) string {
	return cursorColor.Render(marker)
}

// formatTotal returns a colored grand total
func formatTotal(text string) string {
	return totalColor.Render(text)
}

// formatNoIssues returns a colored "no issues" message
func formatNoIssues(message string) string {
	return noIssuesColor.Render(message)
}

// formatIssues returns a colored issues message
func formatIssues(message string) string {
	return issuesColor.Render(message)
}

// formatHint returns a dimmed command hint
func formatHint(text string) string {
	return dimmedColor.Render(text)
}
