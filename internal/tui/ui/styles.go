package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Content area
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Set list
	SetSelected lipgloss.Style
	SetNormal   lipgloss.Style
	SetIndex    lipgloss.Style
	SetTime     lipgloss.Style
	SetExercise lipgloss.Style
	SetWeight   lipgloss.Style
	SetPhase    lipgloss.Style

	// Last set banner
	BannerRecent lipgloss.Style
	BannerStale  lipgloss.Style

	// Charts
	ChartBar  lipgloss.Style
	ChartCut  lipgloss.Style
	ChartLine lipgloss.Style

	// Stats
	StatLabel lipgloss.Style
	StatValue lipgloss.Style
	Hint      lipgloss.Style

	// Input
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog lipgloss.Style

	// Errors and warnings
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette is the set of semantic colors the styles are built from
type palette struct {
	primary   lipgloss.TerminalColor
	secondary lipgloss.TerminalColor
	accent    lipgloss.TerminalColor
	muted     lipgloss.TerminalColor
	success   lipgloss.TerminalColor
	warning   lipgloss.TerminalColor
	err       lipgloss.TerminalColor
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	selection lipgloss.TerminalColor
}

// DefaultStyles returns the styles used when no theme registry is available
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),
		secondary: lipgloss.Color("39"),
		accent:    lipgloss.Color("212"),
		muted:     lipgloss.Color("240"),
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		err:       lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		selection: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Purple marks titles and the active tab, cyan marks times and keys, bright
// purple marks weights and chart bars. Yellow marks cutting-phase data.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		err:       r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		selection: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		SetSelected: lipgloss.NewStyle().
			Background(p.selection).
			Bold(true),
		SetNormal: lipgloss.NewStyle(),
		SetIndex: lipgloss.NewStyle().
			Foreground(p.muted),
		SetTime: lipgloss.NewStyle().
			Foreground(p.secondary),
		SetExercise: lipgloss.NewStyle().
			Foreground(p.fg),
		SetWeight: lipgloss.NewStyle().
			Foreground(p.accent).
			Align(lipgloss.Right),
		SetPhase: lipgloss.NewStyle().
			Foreground(p.warning),

		BannerRecent: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		BannerStale: lipgloss.NewStyle().
			Foreground(p.muted),

		ChartBar: lipgloss.NewStyle().
			Foreground(p.accent),
		ChartCut: lipgloss.NewStyle().
			Foreground(p.warning),
		ChartLine: lipgloss.NewStyle().
			Foreground(p.secondary),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(p.muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.err),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
