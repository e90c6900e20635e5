// Package tui provides the Terminal User Interface for gainsiq.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/tui/views"
	"github.com/gainsiq/gainsiq/internal/units"
)

// Tab represents a view tab
type Tab int

const (
	TabLog Tab = iota
	TabHistory
	TabProgress
	TabWeight
	TabConfig
)

var tabNames = []string{"Log", "History", "Progress", "Weight", "Config"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	unit      units.Unit

	// View models
	logView      views.LogModel
	historyView  views.HistoryModel
	progressView views.ProgressModel
	weightView   views.WeightModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
	help          help.Model
}

// New creates a new TUI model showing weights in unit.
// An empty unit selects the configured one.
func New(ctx context.Context, services *service.Services, unit units.Unit) Model {
	if unit == "" {
		unit = services.Set.Unit()
	}

	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabLog,
		unit:          unit,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		help:          newHelp(styles),
		logView:       views.NewLogModel(ctx, services, styles, keys, unit),
		historyView:   views.NewHistoryModel(ctx, services, styles, keys, unit),
		progressView:  views.NewProgressModel(ctx, services, styles, keys, unit),
		weightView:    views.NewWeightModel(ctx, services, styles, keys, unit),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// newHelp creates the help component in the colors of styles
func newHelp(styles ui.Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.StatusKey
	h.Styles.ShortDesc = styles.StatusHelp
	h.Styles.ShortSeparator = styles.StatusHelp
	h.Styles.FullKey = styles.StatusKey
	h.Styles.FullDesc = styles.StatusHelp
	h.Styles.FullSeparator = styles.StatusHelp
	return h
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.logView.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A view with an open form or selector gets every key
		if m.isCapturingKeys() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Unit):
			m = m.toggleUnit()
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))

		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))

		case key.Matches(msg, m.keys.JumpTab):
			return m.switchTab(Tab(msg.String()[0] - '1'))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-6) // app and status bar padding

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.logView.SetSize(m.width, contentHeight)
		m.historyView.SetSize(m.width, contentHeight)
		m.progressView.SetSize(m.width, contentHeight)
		m.weightView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		if !m.themeProvider.SetTheme(msg.ThemeName) {
			log.WithField("theme", msg.ThemeName).Warn("unknown theme")
			return m, nil
		}
		m.styles = m.themeProvider.Styles()
		width := m.help.Width
		m.help = newHelp(m.styles)
		m.help.Width = width
		m = m.broadcast(ui.ThemeChangedMsg{
			ThemeName: m.themeProvider.CurrentName(),
			Styles:    m.styles,
		})
		return m, views.SaveTheme(m.services, m.themeProvider.CurrentName())
	}

	switch m.activeTab {
	case TabLog:
		m.logView, cmd = m.logView.Update(msg)
	case TabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case TabProgress:
		m.progressView, cmd = m.progressView.Update(msg)
	case TabWeight:
		m.weightView, cmd = m.weightView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	return m, cmd
}

// switchTab activates tab and reloads its data
func (m Model) switchTab(tab Tab) (Model, tea.Cmd) {
	m.activeTab = tab
	return m, m.initCurrentView()
}

// toggleUnit flips the display unit between pounds and kilograms
func (m Model) toggleUnit() Model {
	if m.unit == units.Kilograms {
		m.unit = units.Pounds
	} else {
		m.unit = units.Kilograms
	}
	return m.broadcast(ui.UnitChangedMsg{Unit: m.unit})
}

// broadcast delivers msg to every view
func (m Model) broadcast(msg tea.Msg) Model {
	m.logView, _ = m.logView.Update(msg)
	m.historyView, _ = m.historyView.Update(msg)
	m.progressView, _ = m.progressView.Update(msg)
	m.weightView, _ = m.weightView.Update(msg)
	m.configView, _ = m.configView.Update(msg)
	return m
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabLog:
		b.WriteString(m.logView.View())
	case TabHistory:
		b.WriteString(m.historyView.View())
	case TabProgress:
		b.WriteString(m.progressView.View())
	case TabWeight:
		b.WriteString(m.weightView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// viewKeys returns the bindings of the active view for the status bar and help overlay
func (m Model) viewKeys() ui.ViewKeys {
	k := m.keys
	global := []key.Binding{ui.Describe(k.Unit, string(m.unit)), k.JumpTab, k.Help, k.Quit}

	if m.isCapturingKeys() {
		if m.activeTab == TabConfig {
			return ui.ViewKeys{Short: []key.Binding{
				ui.Describe(k.Up, "navigate"), k.Select, ui.Describe(k.Back, "cancel"),
			}}
		}
		return ui.ViewKeys{Short: []key.Binding{
			ui.Describe(k.NextTab, "switch field"), ui.Describe(k.Select, "save"), ui.Describe(k.Back, "cancel"),
		}}
	}

	var view []key.Binding
	switch m.activeTab {
	case TabLog:
		view = []key.Binding{ui.Describe(k.New, "log set"), ui.Describe(k.Pop, "pop"), k.Refresh}
	case TabHistory:
		view = []key.Binding{k.Left, k.Right, k.Today, ui.Describe(k.Edit, "edit set"), ui.Describe(k.Delete, "delete set")}
	case TabProgress:
		view = []key.Binding{ui.Describe(k.Select, "chart"), k.Chart, ui.Describe(k.Back, "exercises")}
	case TabWeight:
		view = []key.Binding{ui.Describe(k.New, "log weight"), ui.Describe(k.Delete, "delete latest"), k.Refresh}
	case TabConfig:
		view = []key.Binding{ui.Describe(k.Select, "themes")}
	}

	return ui.ViewKeys{
		Short: append(append([]key.Binding{}, view...), global...),
		Full: [][]key.Binding{
			view,
			{k.Up, k.Down, k.NextTab, k.PrevTab},
			global,
		},
	}
}

// renderStatusBar renders the short help of the active view
func (m Model) renderStatusBar() string {
	content := m.help.ShortHelpView(m.viewKeys().ShortHelp())
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}
	return m.styles.StatusBar.Render(content)
}

// isCapturingKeys checks if the current view is capturing keyboard input
func (m Model) isCapturingKeys() bool {
	switch m.activeTab {
	case TabLog:
		return m.logView.IsInputMode()
	case TabHistory:
		return m.historyView.IsInputMode()
	case TabWeight:
		return m.weightView.IsInputMode()
	case TabConfig:
		return m.configView.IsSelectingTheme()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabLog:
		return m.logView.Init()
	case TabHistory:
		return m.historyView.Init()
	case TabProgress:
		return m.progressView.Init()
	case TabWeight:
		return m.weightView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// renderHelpOverlay renders the full help of the active view
func (m Model) renderHelpOverlay() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts: " + tabNames[m.activeTab]))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.viewKeys().FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press ? to close"))
	return m.styles.App.Render(m.styles.Dialog.Render(b.String()))
}

// Unit returns the current display unit
func (m Model) Unit() units.Unit {
	return m.unit
}

// Run starts the TUI application
func Run(services *service.Services, unit units.Unit) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(New(ctx, services, unit), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
