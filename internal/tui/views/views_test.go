package views

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func newLoadedLog(t *testing.T, backend *memoryAPI, unit units.Unit) LogModel {
	t.Helper()
	styles, keys := testStyles()
	m := NewLogModel(context.Background(), setupTestServices(t, backend), styles, keys, unit)
	m.SetSize(100, 40)
	m, _ = m.Update(exec(t, m.Init()))
	return m
}

func newLoadedHistory(t *testing.T, backend *memoryAPI) HistoryModel {
	t.Helper()
	styles, keys := testStyles()
	m := NewHistoryModel(context.Background(), setupTestServices(t, backend), styles, keys, testUnit)
	m.SetSize(100, 40)
	m, _ = m.Update(exec(t, m.Init()))
	return m
}

func newLoadedWeight(t *testing.T, backend *memoryAPI, unit units.Unit) WeightModel {
	t.Helper()
	styles, keys := testStyles()
	m := NewWeightModel(context.Background(), setupTestServices(t, backend), styles, keys, unit)
	m.SetSize(100, 40)
	m, _ = m.Update(exec(t, m.Init()))
	return m
}

func TestRenderSetList(t *testing.T) {
	sets := []service.IndexedSet{
		{Index: 1, Set: workout.WorkoutSet{Timestamp: ts(15, 9, 0), Exercise: "Squat", Reps: "5", SetNumber: 1, Weight: 225}},
		{Index: 2, Set: workout.WorkoutSet{Timestamp: ts(15, 9, 10), Exercise: "Squat", Reps: "5", SetNumber: 2, Weight: 235, WeightModulation: workout.ModulationCutting}},
	}
	styles, _ := testStyles()

	output := RenderSetList(sets, styles, SetListOptions{Width: 100, Cursor: 0, Unit: units.Pounds, Location: time.UTC})

	for _, want := range []string{"[1]", "[2]", "09:00", "09:10", "Squat", "5 x 225.0 lbs", "set 2", "[cut]"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
	if lines := strings.Count(output, "\n"); lines != 2 {
		t.Errorf("expected 2 lines, got %d", lines)
	}
}

func TestRenderSetList_DateAndKilograms(t *testing.T) {
	sets := []service.IndexedSet{
		{Index: 1, Set: workout.WorkoutSet{Timestamp: ts(13, 8, 0), Exercise: "Deadlift", Reps: "3", Weight: 220.462}},
	}
	styles, _ := testStyles()

	output := RenderSetList(sets, styles, SetListOptions{ShowDate: true, Cursor: -1, Unit: units.Kilograms, Location: time.UTC})

	if !strings.Contains(output, "Mar 13 08:00") {
		t.Errorf("expected date in output, got:\n%s", output)
	}
	if !strings.Contains(output, "3 x 100.0 kg") {
		t.Errorf("expected kilogram weight in output, got:\n%s", output)
	}
	if strings.Contains(output, "set ") {
		t.Errorf("expected no set number for set 0, got:\n%s", output)
	}
}

func TestRenderSetList_Empty(t *testing.T) {
	styles, _ := testStyles()
	if output := RenderSetList(nil, styles, SetListOptions{}); output != "" {
		t.Errorf("expected empty output, got %q", output)
	}
}

func TestRenderSetList_TruncatesLongNames(t *testing.T) {
	sets := []service.IndexedSet{
		{Index: 1, Set: workout.WorkoutSet{Timestamp: ts(15, 9, 0), Exercise: "Single Arm Dumbbell Romanian Deadlift On Deficit", Reps: "8", Weight: 50}},
	}
	styles, _ := testStyles()

	output := RenderSetList(sets, styles, SetListOptions{Width: 40, Cursor: -1, Unit: units.Pounds, Location: time.UTC})

	if !strings.Contains(output, "…") {
		t.Errorf("expected truncated exercise name, got:\n%s", output)
	}
}

func TestLogModel_View_Banner(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)

	view := m.View()
	for _, want := range []string{"Last set (09:30, 8h 30m ago)", "Bench Press  8 or below x 185.0 lbs (set 1)", "Today:", "3 sets, 2 exercises"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestLogModel_View_NoRecentSet(t *testing.T) {
	backend := sampleAPI()
	backend.sets = backend.sets[3:] // only the set from two days ago
	m := newLoadedLog(t, backend, testUnit)

	view := m.View()
	if !strings.Contains(view, "No sets in the last 12h") {
		t.Errorf("expected stale banner, got:\n%s", view)
	}
	if !strings.Contains(view, "No sets logged today") {
		t.Errorf("expected empty today listing, got:\n%s", view)
	}
}

func TestLogModel_View_LoadError(t *testing.T) {
	backend := sampleAPI()
	backend.err = errors.New("connection refused")
	m := newLoadedLog(t, backend, testUnit)

	if view := m.View(); !strings.Contains(view, "Error: connection refused") {
		t.Errorf("expected load error in view, got:\n%s", view)
	}
}

func TestLogModel_OpenFormPrefillsLastSet(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)

	m, cmd := m.Update(keyRunes("n"))
	if cmd == nil {
		t.Error("expected blink command when opening form")
	}
	if !m.IsInputMode() {
		t.Fatal("expected input mode after pressing n")
	}
	if got := m.inputs[fieldExercise].Value(); got != "Bench Press" {
		t.Errorf("expected exercise prefilled, got %q", got)
	}
	if got := m.inputs[fieldReps].Value(); got != "8 or below" {
		t.Errorf("expected reps prefilled, got %q", got)
	}
	if got := m.inputs[fieldWeight].Value(); got != "185.0" {
		t.Errorf("expected weight prefilled, got %q", got)
	}

	m, _ = m.Update(escKey)
	if m.IsInputMode() {
		t.Error("expected Esc to close the form")
	}
}

func TestLogModel_SubmitLogsSet(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedLog(t, backend, testUnit)

	m, _ = m.Update(keyRunes("n"))
	m.inputs[fieldExercise].SetValue("deadl")
	m.inputs[fieldReps].SetValue("5")
	m.inputs[fieldWeight].SetValue("315")
	m.inputs[fieldSet].SetValue("2")

	m, cmd := m.Update(enterKey)
	if !m.IsSubmitting() {
		t.Fatal("expected submitting after Enter")
	}
	if view := m.View(); !strings.Contains(view, "Saving...") {
		t.Errorf("expected saving indicator, got:\n%s", view)
	}

	m, cmd = m.Update(exec(t, cmd))
	if m.IsSubmitting() {
		t.Error("expected submitting cleared after response")
	}
	if m.IsInputMode() {
		t.Error("expected form closed after a successful log")
	}
	if cmd == nil {
		t.Error("expected reload after logging")
	}
	if !strings.Contains(m.View(), "Logged: Deadlift  5 x 315.0 lbs (set 2)") {
		t.Errorf("expected logged status, got:\n%s", m.View())
	}

	last := backend.sets[len(backend.sets)-1]
	if last.Exercise != "Deadlift" || last.Weight != 315 || last.SetNumber != 2 {
		t.Errorf("unexpected logged set: %+v", last)
	}
}

func TestLogModel_SubmitConvertsKilograms(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedLog(t, backend, units.Kilograms)

	m, _ = m.Update(keyRunes("n"))
	m.inputs[fieldExercise].SetValue("Squat")
	m.inputs[fieldReps].SetValue("5")
	m.inputs[fieldWeight].SetValue("100")

	_, cmd := m.Update(enterKey)
	exec(t, cmd)

	last := backend.sets[len(backend.sets)-1]
	if last.Weight != 220.46 {
		t.Errorf("expected 220.46 lbs on the wire, got %v", last.Weight)
	}
}

func TestLogModel_InFlightGuard(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedLog(t, backend, testUnit)

	m, _ = m.Update(keyRunes("n"))
	m.inputs[fieldExercise].SetValue("Squat")

	m, cmd := m.Update(enterKey)
	if cmd == nil {
		t.Fatal("expected log command on first Enter")
	}
	m, second := m.Update(enterKey)
	if second != nil {
		t.Error("expected second Enter to be ignored while a request is in flight")
	}

	m, _ = m.Update(exec(t, cmd))
	if backend.calls != 1 {
		t.Errorf("expected exactly 1 write, got %d", backend.calls)
	}
	if m.IsSubmitting() {
		t.Error("expected guard released after the response")
	}
}

func TestLogModel_SubmitFailureKeepsForm(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedLog(t, backend, testUnit)

	m, _ = m.Update(keyRunes("n"))
	backend.err = errors.New("HTTP 500")

	m, cmd := m.Update(enterKey)
	m, _ = m.Update(exec(t, cmd))

	if !m.IsInputMode() {
		t.Error("expected form to stay open after a failed log")
	}
	if m.IsSubmitting() {
		t.Error("expected guard released after a failed log")
	}
	if !strings.Contains(m.View(), "HTTP 500") {
		t.Errorf("expected error in form, got:\n%s", m.View())
	}
}

func TestLogModel_FormValidation(t *testing.T) {
	tests := []struct {
		name     string
		exercise string
		reps     string
		weight   string
		set      string
		wantErr  string
	}{
		{"empty exercise", "", "5", "225", "", "cannot be empty"},
		{"unknown exercise", "curl", "5", "225", "", "unknown exercise 'curl'"},
		{"ambiguous exercise", "squ", "5", "225", "", "matches several exercises: Front Squat, Squat"},
		{"empty reps", "Squat", " ", "225", "", "reps cannot be empty"},
		{"bad weight", "Squat", "5", "heavy", "", "weight"},
		{"negative set", "Squat", "5", "225", "-1", "set number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := sampleAPI()
			m := newLoadedLog(t, backend, testUnit)
			m, _ = m.Update(keyRunes("n"))
			m.inputs[fieldExercise].SetValue(tt.exercise)
			m.inputs[fieldReps].SetValue(tt.reps)
			m.inputs[fieldWeight].SetValue(tt.weight)
			m.inputs[fieldSet].SetValue(tt.set)

			m, cmd := m.Update(enterKey)
			if cmd != nil {
				t.Error("expected no command for invalid input")
			}
			if m.err == nil || !strings.Contains(m.err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, m.err)
			}
			if backend.calls != 0 {
				t.Errorf("expected no writes, got %d", backend.calls)
			}
		})
	}
}

func TestLogModel_ExactMatchWinsOverSubstring(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)
	m, _ = m.Update(keyRunes("n"))
	m.inputs[fieldExercise].SetValue("squat")

	in, err := m.formInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Exercise != "Squat" {
		t.Errorf("expected canonical name Squat, got %q", in.Exercise)
	}
}

func TestLogModel_TabAcceptsSuggestion(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)
	m, _ = m.Update(keyRunes("n"))
	m.inputs[fieldExercise].SetValue("")

	m = typeInto(m, "dea")
	m, _ = m.Update(tabKey)

	if got := m.inputs[fieldExercise].Value(); !strings.EqualFold(got, "Deadlift") {
		t.Errorf("expected suggestion accepted, got %q", got)
	}
	if m.focused != fieldExercise {
		t.Errorf("expected focus to stay on exercise after accepting, got %d", m.focused)
	}

	m, _ = m.Update(tabKey)
	if m.focused != fieldReps {
		t.Errorf("expected tab to move to reps, got %d", m.focused)
	}
}

func TestLogModel_FieldNavigation(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)
	m, _ = m.Update(keyRunes("n"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.focused != fieldWeight {
		t.Errorf("expected weight field, got %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focused != fieldReps {
		t.Errorf("expected reps field, got %d", m.focused)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.focused != fieldSet {
		t.Errorf("expected wraparound to set number, got %d", m.focused)
	}
}

func TestLogModel_PopConfirm(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedLog(t, backend, testUnit)

	m, _ = m.Update(keyRunes("p"))
	if view := m.View(); !strings.Contains(view, "Remove the most recently logged set?") {
		t.Fatalf("expected pop confirmation, got:\n%s", view)
	}

	m, cmd := m.Update(keyRunes("y"))
	if !m.IsSubmitting() {
		t.Error("expected submitting while pop is in flight")
	}
	m, _ = m.Update(exec(t, cmd))

	if !strings.Contains(m.View(), "Removed Bench Press") {
		t.Errorf("expected server message in status, got:\n%s", m.View())
	}
	if len(backend.sets) != 3 {
		t.Errorf("expected 3 sets left, got %d", len(backend.sets))
	}
}

func TestLogModel_PopCancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRunes("n"), keyRunes("N"), escKey} {
		backend := sampleAPI()
		m := newLoadedLog(t, backend, testUnit)

		m, _ = m.Update(keyRunes("p"))
		m, cmd := m.Update(k)
		if cmd != nil {
			t.Errorf("%s: expected no command on cancel", k)
		}
		if m.mode != logModeNormal {
			t.Errorf("%s: expected normal mode after cancel", k)
		}
		if backend.calls != 0 {
			t.Errorf("%s: expected no writes, got %d", k, backend.calls)
		}
	}
}

func TestLogModel_UnitChanged(t *testing.T) {
	m := newLoadedLog(t, sampleAPI(), testUnit)

	m, _ = m.Update(ui.UnitChangedMsg{Unit: units.Kilograms})
	if !strings.Contains(m.View(), "83.9 kg") {
		t.Errorf("expected banner in kilograms, got:\n%s", m.View())
	}
}

func TestHistoryModel_ShowsToday(t *testing.T) {
	m := newLoadedHistory(t, sampleAPI())

	if !m.Day().Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected today, got %v", m.Day())
	}
	view := m.View()
	for _, want := range []string{"Sets for Fri 2024-03-15", "[1]", "[3]", "Bench Press", "3 sets, 2 exercises"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestHistoryModel_DayNavigation(t *testing.T) {
	m := newLoadedHistory(t, sampleAPI())

	m, cmd := m.Update(keyRunes("l"))
	if cmd != nil {
		t.Error("expected no move past today")
	}

	m, cmd = m.Update(keyRunes("h"))
	if m.Day().Day() != 14 {
		t.Fatalf("expected day 14, got %v", m.Day())
	}
	m, _ = m.Update(exec(t, cmd))
	if !strings.Contains(m.View(), "No sets found") {
		t.Errorf("expected empty day, got:\n%s", m.View())
	}

	m, cmd = m.Update(keyRunes("h"))
	m, _ = m.Update(exec(t, cmd))
	if view := m.View(); !strings.Contains(view, "Sets for Wed 2024-03-13") || !strings.Contains(view, "3 x 245.0 lbs") {
		t.Errorf("expected sets of the 13th, got:\n%s", view)
	}

	m, cmd = m.Update(keyRunes("t"))
	if m.Day().Day() != 15 {
		t.Errorf("expected t to jump to today, got %v", m.Day())
	}
	if cmd == nil {
		t.Error("expected reload after jumping to today")
	}
}

func TestHistoryModel_IgnoresStaleResponses(t *testing.T) {
	m := newLoadedHistory(t, sampleAPI())

	m, stale := m.Update(keyRunes("h"))
	m, fresh := m.Update(keyRunes("h"))

	m, _ = m.Update(exec(t, fresh))
	m, _ = m.Update(exec(t, stale))

	if view := m.View(); !strings.Contains(view, "245.0 lbs") {
		t.Errorf("expected the newer day to stay shown, got:\n%s", view)
	}
}

func TestHistoryModel_CursorNavigation(t *testing.T) {
	m := newLoadedHistory(t, sampleAPI())

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 2 {
		t.Errorf("expected cursor clamped at 2, got %d", m.cursor)
	}
	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}
}

func TestHistoryModel_EditSendsChangedFields(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedHistory(t, backend)

	m, _ = m.Update(keyRunes("e"))
	if !m.IsInputMode() {
		t.Fatal("expected edit form")
	}
	if got := m.inputs[editWeight].Value(); got != "225.0" {
		t.Errorf("expected weight prefilled, got %q", got)
	}

	m.inputs[editWeight].SetValue("230")
	m, cmd := m.Update(enterKey)
	m, _ = m.Update(exec(t, cmd))

	if len(backend.edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(backend.edits))
	}
	edit := backend.edits[0]
	if edit.WorkoutID != "w1" || edit.Timestamp != ts(15, 9, 0) {
		t.Errorf("unexpected set key: %+v", edit)
	}
	if edit.Weight == nil || *edit.Weight != 230 {
		t.Errorf("expected weight 230, got %v", edit.Weight)
	}
	if edit.Reps != nil || edit.Sets != nil {
		t.Errorf("expected unchanged fields omitted, got %+v", edit)
	}
	if m.IsInputMode() {
		t.Error("expected form closed after edit")
	}
	if !strings.Contains(m.View(), "Set updated") {
		t.Errorf("expected status, got:\n%s", m.View())
	}
}

func TestHistoryModel_EditWithoutChanges(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedHistory(t, backend)

	m, _ = m.Update(keyRunes("e"))
	m, cmd := m.Update(enterKey)

	if cmd != nil {
		t.Error("expected no command without changes")
	}
	if !errors.Is(m.err, service.ErrNoChanges) {
		t.Errorf("expected ErrNoChanges, got %v", m.err)
	}
	if backend.calls != 0 {
		t.Errorf("expected no writes, got %d", backend.calls)
	}
}

func TestHistoryModel_Delete(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedHistory(t, backend)

	m, _ = m.Update(keyRunes("d"))
	if view := m.View(); !strings.Contains(view, "Squat  5 x 225.0 lbs (set 1)") {
		t.Fatalf("expected confirmation with the selected set, got:\n%s", view)
	}

	m, cmd := m.Update(keyRunes("y"))
	m, _ = m.Update(exec(t, cmd))

	if len(backend.sets) != 3 {
		t.Errorf("expected 3 sets left, got %d", len(backend.sets))
	}
	for _, s := range backend.sets {
		if s.WorkoutID == "w1" {
			t.Error("expected w1 to be deleted")
		}
	}
	if !strings.Contains(m.View(), "Deleted: Squat") {
		t.Errorf("expected status, got:\n%s", m.View())
	}
}

func TestHistoryModel_DeleteOnEmptyDay(t *testing.T) {
	m := newLoadedHistory(t, sampleAPI())
	m, cmd := m.Update(keyRunes("h"))
	m, _ = m.Update(exec(t, cmd))

	m, _ = m.Update(keyRunes("d"))
	if m.mode != historyModeNormal {
		t.Error("expected no confirmation without a selected set")
	}
}

func TestProgressModel_PickerAndChart(t *testing.T) {
	styles, keys := testStyles()
	m := NewProgressModel(context.Background(), setupTestServices(t, sampleAPI()), styles, keys, testUnit)
	m.SetSize(100, 40)
	m, _ = m.Update(exec(t, m.Init()))

	if view := m.View(); !strings.Contains(view, "▸ Bench Press") {
		t.Fatalf("expected picker with first exercise selected, got:\n%s", view)
	}

	for range 3 {
		m, _ = m.Update(keyRunes("j"))
	}
	m, cmd := m.Update(enterKey)
	m, _ = m.Update(exec(t, cmd))

	view := m.View()
	for _, want := range []string{"Squat, average weight", "2024-03-13", "2024-03-15", "245.0", "230.0", "5.0 reps", "3 sets"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected chart to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Index(view, "2024-03-13  ") > strings.Index(view, "2024-03-15  ") {
		t.Error("expected oldest day first")
	}

	m, _ = m.Update(keyRunes("c"))
	if m.Mode() != stats.ChartOneRepMax {
		t.Errorf("expected 1RM mode, got %v", m.Mode())
	}
	view = m.View()
	if !strings.Contains(view, "Squat, estimated 1RM") {
		t.Errorf("expected 1RM title, got:\n%s", view)
	}
	if strings.Contains(view, "reps") {
		t.Errorf("expected no reps column in 1RM mode, got:\n%s", view)
	}

	m, cmd = m.Update(escKey)
	if cmd == nil {
		t.Error("expected reload of the picker")
	}
	if !strings.Contains(m.View(), "Select an exercise") {
		t.Errorf("expected picker after Esc, got:\n%s", m.View())
	}
}

func TestProgressModel_EmptyCatalog(t *testing.T) {
	backend := sampleAPI()
	backend.exercises = nil
	styles, keys := testStyles()
	m := NewProgressModel(context.Background(), setupTestServices(t, backend), styles, keys, testUnit)
	m, _ = m.Update(exec(t, m.Init()))

	if !strings.Contains(m.View(), "No exercises in the catalog") {
		t.Errorf("expected empty catalog message, got:\n%s", m.View())
	}
	if _, cmd := m.Update(enterKey); cmd != nil {
		t.Error("expected Enter to do nothing without exercises")
	}
}

func TestProgressModel_NoSetsInPeriod(t *testing.T) {
	styles, keys := testStyles()
	m := NewProgressModel(context.Background(), setupTestServices(t, sampleAPI()), styles, keys, testUnit)
	m, _ = m.Update(exec(t, m.Init()))

	m, _ = m.Update(keyRunes("j")) // Deadlift has no sets
	m, cmd := m.Update(enterKey)
	m, _ = m.Update(exec(t, cmd))

	if !strings.Contains(m.View(), "No sets in this period") {
		t.Errorf("expected empty chart message, got:\n%s", m.View())
	}
}

func TestWeightModel_Overview(t *testing.T) {
	m := newLoadedWeight(t, sampleAPI(), testUnit)

	view := m.View()
	for _, want := range []string{
		"Entries:", "Latest:", "182.0 lbs (2024-03-15 07:00)", "Average:", "183.0 lbs",
		"Trend:", "-1.00 lbs/week", "Projection (next 30 days)", "Recent:", "2024-03-01 07:00",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("expected overview to contain %q, got:\n%s", want, view)
		}
	}
}

func TestWeightModel_OverviewWithoutTrend(t *testing.T) {
	backend := sampleAPI()
	backend.trend = nil
	m := newLoadedWeight(t, backend, testUnit)

	view := m.View()
	if !strings.Contains(view, "not available") {
		t.Errorf("expected missing trend notice, got:\n%s", view)
	}
	if strings.Contains(view, "Projection") {
		t.Errorf("expected no projection without a trend, got:\n%s", view)
	}
}

func TestWeightModel_Empty(t *testing.T) {
	backend := sampleAPI()
	backend.weights = nil
	m := newLoadedWeight(t, backend, testUnit)

	if !strings.Contains(m.View(), "No weight logged yet") {
		t.Errorf("expected empty message, got:\n%s", m.View())
	}
	if m, _ = m.Update(keyRunes("d")); m.mode != weightModeNormal {
		t.Error("expected delete to be unavailable without samples")
	}
}

func TestWeightModel_LogKilograms(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedWeight(t, backend, units.Kilograms)

	m, _ = m.Update(keyRunes("n"))
	if !m.IsInputMode() {
		t.Fatal("expected input mode")
	}
	m = typeInto(m, "80")

	m, cmd := m.Update(enterKey)
	if _, second := m.Update(enterKey); second != nil {
		t.Error("expected second Enter to be ignored while saving")
	}
	m, cmd = m.Update(exec(t, cmd))

	if m.IsInputMode() {
		t.Error("expected input closed after logging")
	}
	if cmd == nil {
		t.Error("expected reload after logging")
	}
	if !strings.Contains(m.View(), "Logged weight: 80.0 kg") {
		t.Errorf("expected status, got:\n%s", m.View())
	}
	if got := backend.weights[len(backend.weights)-1].Weight; got != 176.37 {
		t.Errorf("expected 176.37 lbs on the wire, got %v", got)
	}
}

func TestWeightModel_LogInvalid(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedWeight(t, backend, testUnit)

	m, _ = m.Update(keyRunes("n"))
	m = typeInto(m, "abc")
	m, cmd := m.Update(enterKey)

	if cmd != nil {
		t.Error("expected no command for invalid weight")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Errorf("expected error in form, got:\n%s", m.View())
	}
	if backend.calls != 0 {
		t.Errorf("expected no writes, got %d", backend.calls)
	}
}

func TestWeightModel_DeleteRecent(t *testing.T) {
	backend := sampleAPI()
	m := newLoadedWeight(t, backend, testUnit)

	m, _ = m.Update(keyRunes("d"))
	if view := m.View(); !strings.Contains(view, "Delete the most recent weight entry?") || !strings.Contains(view, "182.0 lbs") {
		t.Fatalf("expected confirmation, got:\n%s", view)
	}

	m, cmd := m.Update(keyRunes("y"))
	m, _ = m.Update(exec(t, cmd))

	if len(backend.weights) != 2 {
		t.Errorf("expected 2 samples left, got %d", len(backend.weights))
	}
	if !strings.Contains(m.View(), "Deleted the most recent weight entry") {
		t.Errorf("expected status, got:\n%s", m.View())
	}
}

func TestConfigModel_View(t *testing.T) {
	services := setupTestServices(t, sampleAPI())
	styles, keys := testStyles()
	m := NewConfigModel(services, ui.NewThemeProvider("dracula"), styles, keys)
	m, _ = m.Update(exec(t, m.Init()))

	view := m.View()
	for _, want := range []string{"Configuration", "http://gainsiq.test", "*********1234", "Using defaults", "dracula"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "test-key-1234") {
		t.Error("expected api key to be masked")
	}
}

func TestConfigModel_ThemeSelector(t *testing.T) {
	services := setupTestServices(t, sampleAPI())
	provider := ui.NewThemeProvider("dracula")
	styles, keys := testStyles()
	m := NewConfigModel(services, provider, styles, keys)

	m, _ = m.Update(enterKey)
	if !m.IsSelectingTheme() {
		t.Fatal("expected theme selector to open")
	}
	if !strings.Contains(m.View(), "▸ dracula") {
		t.Errorf("expected cursor on current theme, got:\n%s", m.View())
	}

	m, _ = m.Update(keyRunes("j"))
	want := provider.AvailableThemes()[provider.IndexOf("dracula")+1]

	m, cmd := m.Update(enterKey)
	if m.IsSelectingTheme() {
		t.Error("expected selector closed after selection")
	}
	req, ok := exec(t, cmd).(ui.ThemeChangeRequestMsg)
	if !ok {
		t.Fatalf("expected ThemeChangeRequestMsg, got %T", exec(t, cmd))
	}
	if req.ThemeName != want {
		t.Errorf("expected %q, got %q", want, req.ThemeName)
	}
}

func TestConfigModel_ThemeSelectorCancel(t *testing.T) {
	provider := ui.NewThemeProvider("dracula")
	styles, keys := testStyles()
	m := NewConfigModel(setupTestServices(t, sampleAPI()), provider, styles, keys)

	m, _ = m.Update(keyRunes("t"))
	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(escKey)

	if cmd != nil {
		t.Error("expected no command on cancel")
	}
	if m.IsSelectingTheme() {
		t.Error("expected selector closed")
	}
	if m.themes.cursor != provider.IndexOf("dracula") {
		t.Errorf("expected cursor reset to current theme, got %d", m.themes.cursor)
	}
}

func TestSaveTheme(t *testing.T) {
	services := setupTestServices(t, sampleAPI())

	msg, ok := exec(t, SaveTheme(services, "nord")).(ThemeSavedMsg)
	if !ok {
		t.Fatal("expected ThemeSavedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("unexpected error: %v", msg.Err)
	}

	data, err := os.ReadFile(services.Config.GetPath())
	if err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
	if !strings.Contains(string(data), `theme = "nord"`) {
		t.Errorf("expected theme in config file, got:\n%s", data)
	}
	if strings.Contains(string(data), "test-key-1234") {
		t.Error("expected only file values to be persisted")
	}

	m := NewConfigModel(services, ui.NewThemeProvider("nord"), ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(msg)
	if !m.exists {
		t.Error("expected file status to flip after saving")
	}
}

func TestPicker(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	p := picker{visible: 2}

	p.move(-1, len(items))
	if p.cursor != 0 || p.offset != 0 {
		t.Fatalf("expected cursor clamped at top, got cursor=%d offset=%d", p.cursor, p.offset)
	}

	p.jump(3, len(items))
	if p.offset != 2 {
		t.Errorf("expected offset 2 to keep cursor visible, got %d", p.offset)
	}
	out := p.render(items, ui.DefaultStyles(), "c")
	for _, want := range []string{"more above", "▸ d", "(current)", "more below"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "  a") {
		t.Error("expected items above the window to be hidden")
	}

	p.move(10, len(items))
	if p.cursor != 4 || p.offset != 3 {
		t.Errorf("expected cursor 4 offset 3, got cursor=%d offset=%d", p.cursor, p.offset)
	}

	p.jump(0, 0)
	if p.cursor != 0 {
		t.Errorf("expected cursor 0 on empty list, got %d", p.cursor)
	}
}
