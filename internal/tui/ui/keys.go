package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Views
	NextTab key.Binding
	PrevTab key.Binding
	JumpTab key.Binding // 1-5, in tab order

	// Actions
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Unit    key.Binding

	// Sets and weights
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Pop    key.Binding

	// History
	Today key.Binding

	// Progress
	Chart key.Binding
}

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// DefaultKeyMap returns the default key bindings (vim keys and arrows)
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    bind("↑/k", "up", "up", "k"),
		Down:  bind("↓/j", "down", "down", "j"),
		Left:  bind("←/h", "previous day", "left", "h"),
		Right: bind("→/l", "next day", "right", "l"),

		NextTab: bind("tab", "next view", "tab"),
		PrevTab: bind("shift+tab", "previous view", "shift+tab"),
		JumpTab: bind("1-5", "jump to view", "1", "2", "3", "4", "5"),

		Select:  bind("enter", "select", "enter"),
		Back:    bind("esc", "back", "esc"),
		Quit:    bind("q", "quit", "q", "ctrl+c"),
		Help:    bind("?", "help", "?"),
		Refresh: bind("r", "refresh", "r"),
		Unit:    bind("u", "lbs/kg", "u"),

		New:    bind("n", "new", "n"),
		Edit:   bind("e", "edit", "e"),
		Delete: bind("d", "delete", "d"),
		Pop:    bind("p", "pop last set", "p"),

		Today: bind("t", "today", "t"),
		Chart: bind("c", "avg/1rm", "c"),
	}
}

// Describe returns a copy of b whose help text reads desc
func Describe(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

// ViewKeys lists the bindings of one view for the help component
type ViewKeys struct {
	Short []key.Binding
	Full  [][]key.Binding
}

// ShortHelp implements help.KeyMap
func (v ViewKeys) ShortHelp() []key.Binding {
	return v.Short
}

// FullHelp implements help.KeyMap
func (v ViewKeys) FullHelp() [][]key.Binding {
	return v.Full
}
