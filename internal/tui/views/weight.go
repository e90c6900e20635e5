package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// weightMode represents the current mode of the weight view
type weightMode int

const (
	weightModeNormal weightMode = iota
	weightModeLog
	weightModeDelete
)

// recentWeights is the number of samples listed under the trend
const recentWeights = 5

// WeightModel is the model for the bodyweight view
type WeightModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	unit     units.Unit

	// UI state
	width    int
	height   int
	loading  bool
	busy     bool
	err      error
	status   string
	overview *service.WeightOverview

	mode  weightMode
	input textinput.Model
}

// NewWeightModel creates a new weight view model
func NewWeightModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap, unit units.Unit) WeightModel {
	input := textinput.New()
	input.Placeholder = "181.4"
	input.CharLimit = 10
	input.Width = 12

	return WeightModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		unit:     unit,
		input:    input,
	}
}

// weightLoadedMsg is sent when the weight overview is loaded
type weightLoadedMsg struct {
	overview *service.WeightOverview
	err      error
}

// weightChangedMsg is sent when a log or delete completes
type weightChangedMsg struct {
	status string
	err    error
}

// Init implements tea.Model
func (m WeightModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m WeightModel) Update(msg tea.Msg) (WeightModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case weightModeLog:
			return m.handleLogMode(msg)
		case weightModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.New):
			m.mode = weightModeLog
			m.err = nil
			m.status = ""
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if m.overview != nil && len(m.overview.Entries) > 0 && !m.busy {
				m.mode = weightModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}

	case weightLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.overview = msg.overview
		}
		return m, nil

	case weightChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.mode = weightModeNormal
		m.input.Blur()
		m.status = msg.status
		return m, m.load()

	case ui.UnitChangedMsg:
		m.unit = msg.Unit
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == weightModeLog {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleLogMode handles key events while entering a weight
func (m WeightModel) handleLogMode(msg tea.KeyMsg) (WeightModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if m.busy {
			return m, nil
		}
		value, err := workout.ParseWeight(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.busy = true
		return m, m.logWeight(value)
	case key.Matches(msg, m.keys.Back):
		m.mode = weightModeNormal
		m.err = nil
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when confirming deletion of the latest sample
func (m WeightModel) handleDeleteMode(msg tea.KeyMsg) (WeightModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = weightModeNormal
		m.busy = true
		return m, m.deleteRecent()
	case "n", "N", "esc":
		m.mode = weightModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m WeightModel) View() string {
	switch m.mode {
	case weightModeLog:
		return m.renderLogForm()
	case weightModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Bodyweight"))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if m.overview == nil || len(m.overview.Entries) == 0 {
		b.WriteString(m.styles.Hint.Render("No weight logged yet"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to log your weight"))
		return b.String()
	}

	loc := m.services.Set.Location()
	s := m.overview.Summary

	values := make([]float64, len(m.overview.Entries))
	for i, e := range m.overview.Entries {
		values[i] = e.Weight
	}

	b.WriteString(renderStatLine(m.styles, "Entries:", fmt.Sprintf("%d", s.Count)))
	b.WriteString(renderStatLine(m.styles, "Latest:", fmt.Sprintf("%s (%s)",
		units.Format(s.Latest.Weight, m.unit), cli.FormatTimestamp(s.Latest.Timestamp, loc))))
	b.WriteString(renderStatLine(m.styles, "Average:", units.Format(s.Average, m.unit)))
	b.WriteString(m.styles.Hint.Render("History:"))
	b.WriteString(" ")
	b.WriteString(m.styles.ChartLine.Render(stats.Sparkline(values, max(10, min(60, m.width-25)))))
	b.WriteString("\n")

	if s.HasTrend {
		b.WriteString(renderStatLine(m.styles, "Trend:", cli.FormatWeeklyChange(s.WeeklyChange, m.unit)))
	} else {
		b.WriteString(renderStatLine(m.styles, "Trend:", "not available"))
	}

	if len(m.overview.Projection) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("Projection (next %d days)", stats.ProjectionDays)))
		b.WriteString("\n")
		projected := make([]float64, len(m.overview.Projection))
		for i, p := range m.overview.Projection {
			projected[i] = p.Weight
		}
		first := m.overview.Projection[0]
		last := m.overview.Projection[len(m.overview.Projection)-1]
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
			first.Time.In(loc).Format("Jan 02"),
			units.Format(first.Weight, m.unit),
			m.styles.ChartLine.Render(stats.Sparkline(projected, stats.ProjectionPoints)),
			units.Format(last.Weight, m.unit)+" on "+last.Time.In(loc).Format("Jan 02")))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("Recent:"))
	b.WriteString("\n")
	entries := m.overview.Entries
	for i := len(entries) - 1; i >= max(0, len(entries)-recentWeights); i-- {
		e := entries[i]
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			m.styles.SetTime.Render(cli.FormatTimestamp(e.Timestamp, loc)),
			m.styles.SetWeight.Render(units.Format(e.Weight, m.unit))))
	}

	return b.String()
}

// renderLogForm renders the weight entry form
func (m WeightModel) renderLogForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Log Weight"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render(fmt.Sprintf("▸ Weight (%s):", m.unit)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		b.WriteString("\n\n")
	}
	if m.busy {
		b.WriteString(m.styles.Warning.Render("Saving..."))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m WeightModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Weight"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render("Delete the most recent weight entry?"))
	b.WriteString("\n\n")
	if m.overview != nil {
		latest := m.overview.Summary.Latest
		b.WriteString(m.styles.StatValue.Render(fmt.Sprintf("%s  %s",
			cli.FormatTimestamp(latest.Timestamp, m.services.Set.Location()),
			units.Format(latest.Weight, m.unit))))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *WeightModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m WeightModel) IsInputMode() bool {
	return m.mode == weightModeLog
}

// load creates a command to load the weight overview
func (m WeightModel) load() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.services.Weight.Overview(m.ctx)
		return weightLoadedMsg{overview: overview, err: err}
	}
}

// logWeight creates a command to log a bodyweight sample
func (m WeightModel) logWeight(value float64) tea.Cmd {
	unit := m.unit
	return func() tea.Msg {
		pounds, err := m.services.Weight.Log(m.ctx, value, unit)
		if err != nil {
			return weightChangedMsg{err: err}
		}
		return weightChangedMsg{status: "Logged weight: " + units.Format(pounds, unit)}
	}
}

// deleteRecent creates a command to delete the most recent sample
func (m WeightModel) deleteRecent() tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Weight.DeleteRecent(m.ctx); err != nil {
			return weightChangedMsg{err: err}
		}
		return weightChangedMsg{status: "Deleted the most recent weight entry"}
	}
}
