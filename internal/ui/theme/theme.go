package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EAB308") // Amber
	Success   = lipgloss.Color("#16A34A") // Green
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#E7E5E4") // Warm white
	TextDim   = lipgloss.Color("#78716C") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near black
	BgCard    = lipgloss.Color("#292524") // Dark stone
	Border    = lipgloss.Color("#44403C") // Stone border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Code renders embedded program samples.
	Code = lipgloss.NewStyle().
		Foreground(Secondary).
		Background(BgCard).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
