package ui

import "github.com/gainsiq/gainsiq/internal/units"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// UnitChangedMsg is broadcast to all views when the display unit is toggled.
type UnitChangedMsg struct {
	Unit units.Unit
}
