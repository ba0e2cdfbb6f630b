package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — muted, reads well on dark and light terminals
var (
	Primary = lipgloss.Color("#2DD4BF") // Teal
	Accent  = lipgloss.Color("#FBBF24") // Amber
	Error   = lipgloss.Color("#F87171") // Red
	Text    = lipgloss.Color("#E5E7EB") // Light Grey
	TextDim = lipgloss.Color("#9CA3AF") // Grey
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ErrorLine = lipgloss.NewStyle().
			Foreground(Error)
)
