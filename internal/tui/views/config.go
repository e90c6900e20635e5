package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// ConfigModel shows the effective configuration and lets the user pick a theme
type ConfigModel struct {
	services *service.Services
	provider *ui.ThemeProvider
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	config config.Config
	path   string
	exists bool
	theme  string
	err    error

	selecting bool
	themes    picker
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, provider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services: services,
		provider: provider,
		styles:   styles,
		keys:     keys,
		theme:    provider.CurrentName(),
		themes:   picker{visible: maxVisibleThemes},
	}
	m.resetCursor()
	return m
}

// configLoadedMsg carries the effective configuration
type configLoadedMsg struct {
	config config.Config
	path   string
	exists bool
}

// ThemeSavedMsg reports the outcome of writing the theme to the config file
type ThemeSavedMsg struct {
	Err error
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	services := m.services
	return func() tea.Msg {
		return configLoadedMsg{
			config: services.Config.Get(),
			path:   services.Config.GetPath(),
			exists: services.Config.Exists(),
		}
	}
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selecting {
			return m.handleSelector(msg)
		}
		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.selecting = true
			m.resetCursor()
		}

	case configLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists

	case ThemeSavedMsg:
		m.err = msg.Err
		m.exists = m.exists || msg.Err == nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.theme = msg.ThemeName
		m.resetCursor()
	}

	return m, nil
}

func (m *ConfigModel) resetCursor() {
	m.themes.jump(m.provider.IndexOf(m.theme), len(m.provider.AvailableThemes()))
}

// handleSelector handles keys while the theme list is open
func (m ConfigModel) handleSelector(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	names := m.provider.AvailableThemes()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.themes.move(-1, len(names))
	case key.Matches(msg, m.keys.Down):
		m.themes.move(1, len(names))
	case key.Matches(msg, m.keys.Select):
		m.selecting = false
		if m.themes.cursor >= len(names) {
			return m, nil
		}
		name := names[m.themes.cursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: name}
		}
	case key.Matches(msg, m.keys.Back):
		m.selecting = false
		m.resetCursor()
	}

	return m, nil
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "Config file:", m.path))
	if m.exists {
		b.WriteString(renderStatLine(m.styles, "Status:", m.styles.Success.Render("File exists")))
	} else {
		b.WriteString(renderStatLine(m.styles, "Status:", m.styles.Warning.Render("Using defaults (no config file)")))
	}
	b.WriteString("\n")
	b.WriteString(rule(m.width))
	b.WriteString("\n\n")

	c := m.config
	for _, kv := range [][2]string{
		{"api_url:", orNotSet(c.APIURL)},
		{"api_key:", orNotSet(c.MaskedAPIKey())},
		{"unit:", c.Unit},
		{"phase:", orNotSet(c.Phase)},
		{"timezone:", c.Timezone},
		{"timeout_seconds:", fmt.Sprintf("%d", c.TimeoutSeconds)},
		{"cache_ttl_seconds:", fmt.Sprintf("%d", c.CacheTTLSeconds)},
	} {
		b.WriteString(renderStatLine(m.styles, kv[0], kv[1]))
	}

	if m.selecting {
		b.WriteString(renderStatLine(m.styles, "theme:", "Select a theme"))
		b.WriteString("\n")
		b.WriteString(m.themes.render(m.provider.AvailableThemes(), m.styles, m.theme))
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("↑/↓ navigate, Enter select, Esc cancel"))
	} else {
		b.WriteString(renderStatLine(m.styles, "theme:", m.theme))
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("Press Enter or 't' to change theme"))
	}

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(renderError(m.styles, m.err))
	}

	return b.String()
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsSelectingTheme reports whether the theme list is open
func (m ConfigModel) IsSelectingTheme() bool {
	return m.selecting
}

// SaveTheme writes the theme to the config file. Only that key changes, so
// environment overrides never end up in the file.
func SaveTheme(services *service.Services, name string) tea.Cmd {
	return func() tea.Msg {
		return ThemeSavedMsg{Err: services.Config.Set("theme", name)}
	}
}
