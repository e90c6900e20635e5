package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// logMode represents the current mode of the log view
type logMode int

const (
	logModeNormal logMode = iota
	logModeForm
	logModePopConfirm
)

// Form field positions
const (
	fieldExercise = iota
	fieldReps
	fieldWeight
	fieldSet
	fieldCount
)

var fieldLabels = [fieldCount]string{"Exercise:", "Reps:", "Weight:", "Set number:"}

// LogModel is the model for the log view
type LogModel struct {
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
	status  string

	lastSet    workout.WorkoutSet
	hasLastSet bool
	today      *service.ListResult
	exercises  []string

	// Form state
	mode    logMode
	inputs  [fieldCount]textinput.Model
	focused int
	// submitting is set while a log or pop request is in flight; further
	// submits are ignored until the response arrives.
	submitting bool
}

// NewLogModel creates a new log view model
func NewLogModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap, unit units.Unit) LogModel {
	var inputs [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"Squat", "5", "225", "optional"}
	widths := [fieldCount]int{40, 10, 10, 10}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 100
		in.Width = widths[i]
		inputs[i] = in
	}
	inputs[fieldExercise].ShowSuggestions = true

	return LogModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		unit:     unit,
		inputs:   inputs,
	}
}

// lastSetMsg is sent when the last set banner and today's sets are loaded
type lastSetMsg struct {
	set       workout.WorkoutSet
	found     bool
	today     *service.ListResult
	exercises []string
	err       error
}

// setLoggedMsg is sent when a log request completes
type setLoggedMsg struct {
	req api.LogSetRequest
	err error
}

// poppedMsg is sent when a pop request completes
type poppedMsg struct {
	message string
	err     error
}

// Init implements tea.Model
func (m LogModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m LogModel) Update(msg tea.Msg) (LogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case logModeForm:
			return m.handleFormMode(msg)
		case logModePopConfirm:
			return m.handlePopConfirm(msg)
		}

		switch {
		case key.Matches(msg, m.keys.New):
			return m.openForm()
		case key.Matches(msg, m.keys.Pop):
			if !m.submitting {
				m.mode = logModePopConfirm
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}

	case lastSetMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.lastSet = msg.set
			m.hasLastSet = msg.found
			m.today = msg.today
			if msg.exercises != nil {
				m.exercises = msg.exercises
				m.inputs[fieldExercise].SetSuggestions(msg.exercises)
			}
		}
		return m, nil

	case setLoggedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.mode = logModeNormal
		m.blurAll()
		m.status = "Logged: " + cli.FormatSet(workout.WorkoutSet{
			Exercise:  msg.req.Exercise,
			Reps:      msg.req.Reps,
			SetNumber: msg.req.Sets,
			Weight:    msg.req.Weight,
		}, m.unit)
		return m, m.load()

	case poppedMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.message
		return m, m.load()

	case ui.UnitChangedMsg:
		m.unit = msg.Unit
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == logModeForm {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	return m, nil
}

// openForm opens the log form, prefilled from the last set for quick repeats
func (m LogModel) openForm() (LogModel, tea.Cmd) {
	m.mode = logModeForm
	m.err = nil
	m.status = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	if m.hasLastSet {
		m.inputs[fieldExercise].SetValue(m.lastSet.Exercise)
		m.inputs[fieldReps].SetValue(m.lastSet.Reps)
		m.inputs[fieldWeight].SetValue(units.FormatValue(m.lastSet.Weight, m.unit))
	}
	m.focused = fieldExercise
	m.blurAll()
	m.inputs[m.focused].Focus()
	return m, textinput.Blink
}

// handleFormMode handles key events while the log form is open
func (m LogModel) handleFormMode(msg tea.KeyMsg) (LogModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if m.submitting {
			return m, nil
		}
		in, err := m.formInput()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.submitting = true
		return m, m.logSet(in)

	case key.Matches(msg, m.keys.Back):
		m.mode = logModeNormal
		m.err = nil
		m.blurAll()
		return m, nil

	case msg.String() == "tab" && m.canAcceptSuggestion():
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd

	case msg.String() == "tab", msg.String() == "down":
		return m.focus((m.focused + 1) % fieldCount)

	case msg.String() == "shift+tab", msg.String() == "up":
		return m.focus((m.focused - 1 + fieldCount) % fieldCount)
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// handlePopConfirm handles key events when confirming a pop
func (m LogModel) handlePopConfirm(msg tea.KeyMsg) (LogModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = logModeNormal
		m.submitting = true
		return m, m.pop()
	case "n", "N", "esc":
		m.mode = logModeNormal
	}
	return m, nil
}

func (m LogModel) focus(field int) (LogModel, tea.Cmd) {
	m.blurAll()
	m.focused = field
	m.inputs[field].Focus()
	return m, textinput.Blink
}

// canAcceptSuggestion reports whether tab should complete the exercise name
func (m LogModel) canAcceptSuggestion() bool {
	if m.focused != fieldExercise {
		return false
	}
	in := m.inputs[fieldExercise]
	suggestion := in.CurrentSuggestion()
	return suggestion != "" && suggestion != in.Value()
}

func (m *LogModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// formInput validates the form and resolves the exercise name
func (m LogModel) formInput() (service.LogInput, error) {
	exercise := strings.TrimSpace(m.inputs[fieldExercise].Value())
	if exercise == "" {
		return service.LogInput{}, service.ErrEmptyExercise
	}
	if len(m.exercises) > 0 {
		matches := service.Match(m.exercises, exercise)
		switch len(matches) {
		case 0:
			return service.LogInput{}, fmt.Errorf("unknown exercise '%s'", exercise)
		case 1:
			exercise = matches[0]
		default:
			return service.LogInput{}, fmt.Errorf("'%s' matches several exercises: %s", exercise, strings.Join(matches, ", "))
		}
	}

	reps, err := workout.NormalizeReps(m.inputs[fieldReps].Value())
	if err != nil {
		return service.LogInput{}, err
	}

	weight, err := workout.ParseWeight(m.inputs[fieldWeight].Value())
	if err != nil {
		return service.LogInput{}, err
	}

	var setNumber int
	if raw := strings.TrimSpace(m.inputs[fieldSet].Value()); raw != "" {
		setNumber, err = strconv.Atoi(raw)
		if err != nil || setNumber < 0 {
			return service.LogInput{}, service.ErrInvalidSetNumber
		}
	}

	return service.LogInput{
		Exercise:  exercise,
		Reps:      reps,
		Weight:    weight,
		Unit:      m.unit,
		SetNumber: setNumber,
	}, nil
}

// View implements tea.Model
func (m LogModel) View() string {
	switch m.mode {
	case logModeForm:
		return m.renderForm()
	case logModePopConfirm:
		return m.renderPopConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Log"))
	b.WriteString("\n")

	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}

	if m.today == nil || len(m.today.Sets) == 0 {
		b.WriteString(m.styles.Hint.Render("No sets logged today"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to log a set"))
		return b.String()
	}

	b.WriteString(m.styles.Hint.Render("Today:"))
	b.WriteString("\n")
	b.WriteString(RenderSetList(m.today.Sets, m.styles, SetListOptions{
		Width:    m.width,
		Cursor:   -1,
		Unit:     m.unit,
		Location: m.services.Set.Location(),
	}))
	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString("Total: " + cli.FormatSessionStats(m.today.Stats, m.unit))

	return b.String()
}

// renderBanner renders the most recent set within the banner window
func (m LogModel) renderBanner() string {
	if !m.hasLastSet {
		window := fmt.Sprintf("%dh", int(service.DefaultLastSetWindow/time.Hour))
		return m.styles.BannerStale.Render("No sets in the last " + window)
	}
	loc := m.services.Set.Location()
	return m.styles.BannerRecent.Render(fmt.Sprintf("Last set (%s, %s): %s",
		cli.FormatClock(m.lastSet.Timestamp, loc),
		cli.FormatAgo(m.lastSet.Time(), m.services.Set.Now()),
		cli.FormatSet(m.lastSet, m.unit)))
}

// renderForm renders the log set form
func (m LogModel) renderForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Log Set"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := fieldLabels[i]
		if i == fieldWeight {
			label = fmt.Sprintf("Weight (%s):", m.unit)
		}
		if i == m.focused {
			label = "▸ " + label
		}
		b.WriteString(m.styles.Hint.Render(label))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(renderError(m.styles, m.err))
		b.WriteString("\n\n")
	}
	if m.submitting {
		b.WriteString(m.styles.Warning.Render("Saving..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Hint.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderPopConfirm renders the pop confirmation dialog
func (m LogModel) renderPopConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Pop Last Set"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render("Remove the most recently logged set?"))
	b.WriteString("\n\n")
	if m.hasLastSet {
		b.WriteString(m.styles.StatValue.Render(cli.FormatSet(m.lastSet, m.unit)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *LogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m LogModel) IsInputMode() bool {
	return m.mode == logModeForm
}

// IsSubmitting reports whether a request is in flight
func (m LogModel) IsSubmitting() bool {
	return m.submitting
}

// load creates a command to load the banner, today's sets and the exercise list
func (m LogModel) load() tea.Cmd {
	return func() tea.Msg {
		set, found, err := m.services.Set.LastSet(m.ctx, service.DefaultLastSetWindow)
		if err != nil {
			return lastSetMsg{err: err}
		}
		today, err := m.services.Set.Today(m.ctx)
		if err != nil {
			return lastSetMsg{err: err}
		}
		// The exercise list only feeds suggestions and name matching
		exercises, err := m.services.Exercise.List(m.ctx)
		if err != nil {
			exercises = nil
		}
		return lastSetMsg{set: set, found: found, today: today, exercises: exercises}
	}
}

// logSet creates a command to log a set
func (m LogModel) logSet(in service.LogInput) tea.Cmd {
	return func() tea.Msg {
		req, err := m.services.Set.Log(m.ctx, in)
		return setLoggedMsg{req: req, err: err}
	}
}

// pop creates a command to remove the most recent set
func (m LogModel) pop() tea.Cmd {
	return func() tea.Msg {
		message, err := m.services.Set.Pop(m.ctx)
		return poppedMsg{message: message, err: err}
	}
}
