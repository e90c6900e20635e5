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

	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// historyMode represents the current mode of the history view
type historyMode int

const (
	historyModeNormal historyMode = iota
	historyModeEdit
	historyModeDelete
)

// Edit form fields
const (
	editReps = iota
	editWeight
	editSet
	editCount
)

// HistoryModel is the model for the history view
type HistoryModel struct {
	ctx      context.Context
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	unit     units.Unit

	// UI state
	width   int
	height  int
	day     time.Time
	cursor  int
	result  *service.ListResult
	loading bool
	busy    bool
	err     error
	status  string

	// Edit state
	mode    historyMode
	inputs  [editCount]textinput.Model
	focused int
	editing workout.WorkoutSet
}

// NewHistoryModel creates a new history view model showing today
func NewHistoryModel(ctx context.Context, services *service.Services, styles ui.Styles, keys ui.KeyMap, unit units.Unit) HistoryModel {
	var inputs [editCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 20
		in.Width = 12
		inputs[i] = in
	}

	return HistoryModel{
		ctx:      ctx,
		services: services,
		styles:   styles,
		keys:     keys,
		unit:     unit,
		inputs:   inputs,
		day:      timeutil.StartOfDay(services.Set.Now()),
	}
}

// historyLoadedMsg is sent when the sets of a day are loaded
type historyLoadedMsg struct {
	day    time.Time
	result *service.ListResult
	err    error
}

// historyChangedMsg is sent when an edit or delete completes
type historyChangedMsg struct {
	status string
	err    error
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case historyModeEdit:
			return m.handleEditMode(msg)
		case historyModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.result != nil && m.cursor < len(m.result.Sets)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Left):
			return m.moveDay(-1)
		case key.Matches(msg, m.keys.Right):
			return m.moveDay(1)
		case key.Matches(msg, m.keys.Today):
			m.day = timeutil.StartOfDay(m.services.Set.Now())
			m.cursor = 0
			m.status = ""
			return m, m.load()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load()
		case key.Matches(msg, m.keys.Edit):
			if set, ok := m.selected(); ok && !m.busy {
				return m.openEdit(set)
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if _, ok := m.selected(); ok && !m.busy {
				m.mode = historyModeDelete
			}
			return m, nil
		}

	case historyLoadedMsg:
		m.loading = false
		// Ignore responses for a day the user already navigated away from
		if !msg.day.Equal(m.day) {
			return m, nil
		}
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
			if m.cursor >= len(m.result.Sets) {
				m.cursor = max(0, len(m.result.Sets)-1)
			}
		}
		return m, nil

	case historyChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.mode = historyModeNormal
		m.blurAll()
		m.status = msg.status
		return m, m.load()

	case ui.UnitChangedMsg:
		m.unit = msg.Unit
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == historyModeEdit {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	return m, nil
}

// moveDay shifts the shown day, refusing to move past today
func (m HistoryModel) moveDay(delta int) (HistoryModel, tea.Cmd) {
	next := m.day.AddDate(0, 0, delta)
	today := timeutil.StartOfDay(m.services.Set.Now())
	if next.After(today) {
		return m, nil
	}
	m.day = next
	m.cursor = 0
	m.status = ""
	m.loading = true
	return m, m.load()
}

func (m HistoryModel) selected() (workout.WorkoutSet, bool) {
	if m.result == nil || m.cursor >= len(m.result.Sets) {
		return workout.WorkoutSet{}, false
	}
	return m.result.Sets[m.cursor].Set, true
}

// openEdit opens the edit form prefilled with the selected set
func (m HistoryModel) openEdit(set workout.WorkoutSet) (HistoryModel, tea.Cmd) {
	m.mode = historyModeEdit
	m.editing = set
	m.err = nil
	m.status = ""
	m.inputs[editReps].SetValue(set.Reps)
	m.inputs[editWeight].SetValue(units.FormatValue(set.Weight, m.unit))
	m.inputs[editSet].SetValue(strconv.Itoa(set.SetNumber))
	m.focused = editReps
	m.blurAll()
	m.inputs[m.focused].Focus()
	return m, textinput.Blink
}

// handleEditMode handles key events while the edit form is open
func (m HistoryModel) handleEditMode(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if m.busy {
			return m, nil
		}
		edit, err := m.editInput()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.busy = true
		return m, m.applyEdit(m.editing.Key(), edit)

	case key.Matches(msg, m.keys.Back):
		m.mode = historyModeNormal
		m.err = nil
		m.blurAll()
		return m, nil

	case msg.String() == "tab", msg.String() == "down":
		m.blurAll()
		m.focused = (m.focused + 1) % editCount
		m.inputs[m.focused].Focus()
		return m, textinput.Blink

	case msg.String() == "shift+tab", msg.String() == "up":
		m.blurAll()
		m.focused = (m.focused - 1 + editCount) % editCount
		m.inputs[m.focused].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events when in delete confirmation mode
func (m HistoryModel) handleDeleteMode(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		set, ok := m.selected()
		m.mode = historyModeNormal
		if !ok {
			return m, nil
		}
		m.busy = true
		return m, m.deleteSet(set)
	case "n", "N", "esc":
		m.mode = historyModeNormal
	}
	return m, nil
}

func (m *HistoryModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// editInput builds the changes from the fields that differ from the set
func (m HistoryModel) editInput() (service.EditInput, error) {
	edit := service.EditInput{Unit: m.unit}

	reps := strings.TrimSpace(m.inputs[editReps].Value())
	if reps != m.editing.Reps {
		edit.Reps = &reps
	}

	weightStr := strings.TrimSpace(m.inputs[editWeight].Value())
	if weightStr != units.FormatValue(m.editing.Weight, m.unit) {
		w, err := workout.ParseWeight(weightStr)
		if err != nil {
			return edit, err
		}
		edit.Weight = &w
	}

	setStr := strings.TrimSpace(m.inputs[editSet].Value())
	if setStr != strconv.Itoa(m.editing.SetNumber) {
		n, err := strconv.Atoi(setStr)
		if err != nil {
			return edit, fmt.Errorf("invalid set number '%s'", setStr)
		}
		edit.SetNumber = &n
	}

	if edit.Reps == nil && edit.Weight == nil && edit.SetNumber == nil {
		return edit, service.ErrNoChanges
	}
	return edit, nil
}

// View implements tea.Model
func (m HistoryModel) View() string {
	switch m.mode {
	case historyModeEdit:
		return m.renderEditForm()
	case historyModeDelete:
		return m.renderDeleteConfirm()
	}

	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Sets for " + cli.FormatDay(m.day)))
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

	if m.result == nil || len(m.result.Sets) == 0 {
		b.WriteString(m.styles.Hint.Render("No sets found"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Use h/l to move between days"))
		return b.String()
	}

	b.WriteString(RenderSetList(m.result.Sets, m.styles, SetListOptions{
		Width:    m.width,
		Cursor:   m.cursor,
		Unit:     m.unit,
		Location: m.services.Set.Location(),
	}))

	b.WriteString(rule(m.width))
	b.WriteString("\n")
	b.WriteString("Total: " + cli.FormatSessionStats(m.result.Stats, m.unit))

	return b.String()
}

// renderEditForm renders the edit set form
func (m HistoryModel) renderEditForm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Edit Set"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatValue.Render(cli.FormatSet(m.editing, m.unit)))
	b.WriteString("\n\n")

	labels := [editCount]string{"Reps:", fmt.Sprintf("Weight (%s):", m.unit), "Set number:"}
	for i, in := range m.inputs {
		label := labels[i]
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

	b.WriteString(m.styles.Hint.Render("Tab to switch fields, Enter to save, Esc to cancel"))
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m HistoryModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ViewTitle.Render("Delete Set"))
	b.WriteString("\n\n")

	if set, ok := m.selected(); ok {
		b.WriteString(m.styles.Warning.Render("Are you sure you want to delete this set?"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatValue.Render(cli.FormatSet(set, m.unit)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Day returns the calendar day being shown
func (m HistoryModel) Day() time.Time {
	return m.day
}

// IsInputMode returns true when the view is capturing keyboard input
func (m HistoryModel) IsInputMode() bool {
	return m.mode == historyModeEdit
}

// load creates a command to load the sets of the current day
func (m HistoryModel) load() tea.Cmd {
	day := m.day
	return func() tea.Msg {
		result, err := m.services.Set.ForDay(m.ctx, day)
		return historyLoadedMsg{day: day, result: result, err: err}
	}
}

// applyEdit creates a command to edit a set
func (m HistoryModel) applyEdit(setKey workout.SetKey, edit service.EditInput) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Set.Edit(m.ctx, setKey, edit); err != nil {
			return historyChangedMsg{err: err}
		}
		return historyChangedMsg{status: "Set updated"}
	}
}

// deleteSet creates a command to delete a set
func (m HistoryModel) deleteSet(set workout.WorkoutSet) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Set.Delete(m.ctx, set.Key()); err != nil {
			return historyChangedMsg{err: err}
		}
		return historyChangedMsg{status: "Deleted: " + cli.FormatSet(set, m.unit)}
	}
}
