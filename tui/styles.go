package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary  = "#7D56F4"
	colorPositive = "#04B575"
	colorNegative = "#FF5F56"
	colorNeutral  = "#FABD2F"
	colorInfo     = "#626262"
	colorCursor   = "#FAFAFA"
)

// Styles for the review TUI
var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginTop(1).
		MarginBottom(1)

	PositiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPositive))

	NegativeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorNegative))

	NeutralStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorNeutral))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	CursorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorCursor)).
		Background(lipgloss.Color(colorPrimary)).
		Padding(0, 1)
)

// LabelStyle picks a style for a sentiment label.
func LabelStyle(label string) lipgloss.Style {
	switch label {
	case "POSITIVE":
		return PositiveStyle
	case "NEGATIVE":
		return NegativeStyle
	default:
		return NeutralStyle
	}
}
