package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
)

// maxVisibleExercises is the maximum number of exercises shown in the picker
const maxVisibleExercises = 12

// chartBarWidth is the width of the longest bar in the progress chart
const chartBarWidth = 30

// ProgressModel is the model for the progress view
type ProgressModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	unit     units.Unit

	// UI state
	width   int
	height  int
	loading bool
	err     error

	exercises []string
	picker    picker

	// Chart
	mode   stats.ChartMode
	result *service.ProgressResult
}

// NewProgressModel creates a new progress view model
func NewProgressModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap, unit units.Unit) ProgressModel {
	return ProgressModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		unit:     unit,
		mode:     stats.ChartAverage,
		picker:   picker{visible: maxVisibleExercises},
	}
}

// exercisesLoadedMsg is sent when the exercise catalog is loaded
type exercisesLoadedMsg struct {
	exercises []string
	err       error
}

// progressLoadedMsg is sent when the daily buckets of an exercise are loaded
type progressLoadedMsg struct {
	result *service.ProgressResult
	err    error
}

// Init implements tea.Model
func (m ProgressModel) Init() tea.Cmd {
	if m.result != nil {
		return m.loadProgress(m.result.Exercise)
	}
	return m.loadExercises()
}

// Update implements tea.Model
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.result != nil {
			return m.handleChartKeys(msg)
		}
		return m.handlePickerKeys(msg)

	case exercisesLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.exercises = msg.exercises
			m.picker.jump(m.picker.cursor, len(m.exercises))
		}
		return m, nil

	case progressLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
		}
		return m, nil

	case ui.UnitChangedMsg:
		m.unit = msg.Unit
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handlePickerKeys handles keys while choosing an exercise
func (m ProgressModel) handlePickerKeys(msg tea.KeyMsg) (ProgressModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.move(-1, len(m.exercises))
	case key.Matches(msg, m.keys.Down):
		m.picker.move(1, len(m.exercises))
	case key.Matches(msg, m.keys.Select):
		if m.picker.cursor < len(m.exercises) {
			m.loading = true
			return m, m.loadProgress(m.exercises[m.picker.cursor])
		}
	case key.Matches(msg, m.keys.Chart):
		m.mode = m.mode.Toggle()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadExercises()
	}
	return m, nil
}

// handleChartKeys handles keys while a chart is shown
func (m ProgressModel) handleChartKeys(msg tea.KeyMsg) (ProgressModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Chart):
		m.mode = m.mode.Toggle()
	case key.Matches(msg, m.keys.Back):
		m.result = nil
		m.err = nil
		return m, m.loadExercises()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.loadProgress(m.result.Exercise)
	}
	return m, nil
}

// View implements tea.Model
func (m ProgressModel) View() string {
	if m.result != nil {
		return m.renderChart()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Progress"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if len(m.exercises) == 0 {
		b.WriteString(m.styles.Hint.Render("No exercises in the catalog"))
		return b.String()
	}

	b.WriteString(m.styles.Hint.Render("Select an exercise:"))
	b.WriteString("\n\n")

	b.WriteString(m.picker.render(m.exercises, m.styles, ""))

	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render(fmt.Sprintf("Chart: %s (c to toggle)", m.modeTitle())))
	return b.String()
}

func (m ProgressModel) modeTitle() string {
	if m.mode == stats.ChartOneRepMax {
		return "estimated 1RM"
	}
	return "average weight"
}

// renderChart renders one bar per training day, oldest first
func (m ProgressModel) renderChart() string {
	var b strings.Builder
	r := m.result

	b.WriteString(m.styles.ViewTitle.Render(fmt.Sprintf("%s, %s", r.Exercise, m.modeTitle())))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render(fmt.Sprintf("%s (%s)",
		cli.FormatRange(r.Range.Start, r.Range.End), cli.Plural(r.SetCount, "set"))))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		return b.String()
	}
	if len(r.Buckets) == 0 {
		b.WriteString(m.styles.Hint.Render("No sets in this period"))
		return b.String()
	}

	var maxValue float64
	values := make([]float64, 0, len(r.Buckets))
	for i := len(r.Buckets) - 1; i >= 0; i-- {
		v := r.Buckets[i].Value(m.mode)
		maxValue = max(maxValue, v)
		values = append(values, v)
	}

	b.WriteString(m.styles.ChartLine.Render(stats.Sparkline(values, max(10, min(60, m.width-4)))))
	b.WriteString("\n\n")

	for i := len(r.Buckets) - 1; i >= 0; i-- {
		bucket := r.Buckets[i]
		v := bucket.Value(m.mode)
		bar := m.styles.ChartBar
		if bucket.Cutting {
			bar = m.styles.ChartCut
		}
		line := fmt.Sprintf("%s  %8s  %s",
			bucket.Date.Format("2006-01-02"),
			units.FormatValue(v, m.unit),
			bar.Render(fmt.Sprintf("%-*s", chartBarWidth, stats.Bar(v, maxValue, chartBarWidth))))
		if m.mode == stats.ChartAverage {
			line += fmt.Sprintf("  %.1f reps", bucket.AvgReps)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render(fmt.Sprintf("Values in %s, cutting days highlighted", m.unit)))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ProgressModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Mode returns the current chart mode
func (m ProgressModel) Mode() stats.ChartMode {
	return m.mode
}

// loadExercises creates a command to load the exercise catalog
func (m ProgressModel) loadExercises() tea.Cmd {
	return func() tea.Msg {
		exercises, err := m.services.Exercise.List(m.ctx)
		return exercisesLoadedMsg{exercises: exercises, err: err}
	}
}

// loadProgress creates a command to load the daily buckets of exercise
func (m ProgressModel) loadProgress(exercise string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.services.Progress.ForExercise(m.ctx, exercise, timeutil.Range{})
		return progressLoadedMsg{result: result, err: err}
	}
}
