package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: boardroom navy with warm highlights
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Gold      = lipgloss.Color("#FACC15") // Certificate gold
	Cyan      = lipgloss.Color("#22D3EE")
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Text
var (
	Prompt = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Link = lipgloss.NewStyle().
		Foreground(Cyan)
)

// Answer states
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	// Chosen marks the answer the learner locked in.
	Chosen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Faded = lipgloss.NewStyle().
		Foreground(TextDim)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Score bar
var (
	BarEmpty = lipgloss.NewStyle().
			Background(Border)

	// BarTick marks a tier threshold on the bar.
	BarTick = lipgloss.NewStyle().
		Foreground(Text).
		Background(BgCard)
)
