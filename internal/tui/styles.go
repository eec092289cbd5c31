package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color Palette
	// Primary: Cyan - panel border and title
	// Accent: Amber - the counter value
	// Text: Gray hierarchy for hints

	primary   = lipgloss.Color("#00d4ff") // Cyan
	accent    = lipgloss.Color("#ffb627") // Amber
	textMuted = lipgloss.Color("#6c757d") // Gray

	// Title embedded in the top border
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	// Border pieces drawn by hand (top edge) share this color
	borderStyle = lipgloss.NewStyle().
			Foreground(primary)

	// Panel body - top border is built manually so the title can sit in it
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderTop(false).
			BorderForeground(primary).
			Align(lipgloss.Center)

	counterStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Faint(true)
)
