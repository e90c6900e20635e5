package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured or the configured one is unknown
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
	themes   []string
}

// NewThemeProvider creates a ThemeProvider showing initialTheme.
// An empty or unknown name selects DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	themes := registry.TintIDs()
	slices.Sort(themes)

	return &ThemeProvider{registry: registry, themes: themes}
}

// SetTheme switches to the named theme and reports whether it exists
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the ID of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human readable name of the current theme
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns the sorted theme IDs
func (tp *ThemeProvider) AvailableThemes() []string {
	return tp.themes
}

// IndexOf returns the position of name in AvailableThemes, or 0 if absent
func (tp *ThemeProvider) IndexOf(name string) int {
	if i := slices.Index(tp.themes, name); i >= 0 {
		return i
	}
	return 0
}

// Styles returns the styles for the current theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
