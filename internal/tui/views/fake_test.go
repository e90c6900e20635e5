package views

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/tui/ui"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

var testNow = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

// memoryAPI is a stateful in-memory backend
type memoryAPI struct {
	mu sync.Mutex

	exercises []string
	sets      []workout.WorkoutSet
	weights   []workout.WeightEntry
	trend     *workout.WeightTrend

	err   error // returned by every call when set
	calls int   // number of write calls

	edits []api.EditSetRequest
}

func (f *memoryAPI) write() error {
	f.calls++
	return f.err
}

func (f *memoryAPI) Exercises(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.exercises...), f.err
}

func (f *memoryAPI) AddExercise(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exercises = append(f.exercises, name)
	return f.write()
}

func (f *memoryAPI) DeleteExercise(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write()
}

func (f *memoryAPI) LogSet(ctx context.Context, req api.LogSetRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return err
	}
	ts := req.Timestamp
	if ts == 0 {
		ts = testNow.Add(-time.Minute).Unix()
	}
	f.sets = append(f.sets, workout.WorkoutSet{
		WorkoutID: "new",
		Timestamp: ts,
		Exercise:  req.Exercise,
		Reps:      req.Reps,
		SetNumber: req.Sets,
		Weight:    req.Weight,
	})
	return nil
}

func (f *memoryAPI) BatchLogSets(ctx context.Context, reqs []api.LogSetRequest) error {
	for _, r := range reqs {
		if err := f.LogSet(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (f *memoryAPI) LastMonthSets(ctx context.Context) ([]workout.WorkoutSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]workout.WorkoutSet(nil), f.sets...), f.err
}

func (f *memoryAPI) Sets(ctx context.Context, start, end int64) ([]workout.WorkoutSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []workout.WorkoutSet
	for _, s := range f.sets {
		if s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	return out, f.err
}

func (f *memoryAPI) SetsByExercise(ctx context.Context, exercise string, start, end int64) ([]workout.WorkoutSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []workout.WorkoutSet
	for _, s := range f.sets {
		if s.Exercise == exercise && s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	return out, f.err
}

func (f *memoryAPI) EditSet(ctx context.Context, req api.EditSetRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return err
	}
	f.edits = append(f.edits, req)
	for i, s := range f.sets {
		if s.WorkoutID == req.WorkoutID && s.Timestamp == req.Timestamp {
			if req.Reps != nil {
				f.sets[i].Reps = *req.Reps
			}
			if req.Weight != nil {
				f.sets[i].Weight = *req.Weight
			}
			if req.Sets != nil {
				f.sets[i].SetNumber = *req.Sets
			}
		}
	}
	return nil
}

func (f *memoryAPI) DeleteSet(ctx context.Context, key workout.SetKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return err
	}
	out := f.sets[:0]
	for _, s := range f.sets {
		if s.Key() != key {
			out = append(out, s)
		}
	}
	f.sets = out
	return nil
}

func (f *memoryAPI) PopLastSet(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return "", err
	}
	if len(f.sets) == 0 {
		return "Nothing to pop", nil
	}
	sort.Slice(f.sets, func(i, j int) bool { return f.sets[i].Timestamp < f.sets[j].Timestamp })
	last := f.sets[len(f.sets)-1]
	f.sets = f.sets[:len(f.sets)-1]
	return "Removed " + last.Exercise, nil
}

func (f *memoryAPI) LogWeight(ctx context.Context, pounds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return err
	}
	f.weights = append(f.weights, workout.WeightEntry{Timestamp: testNow.Unix(), Weight: pounds})
	return nil
}

func (f *memoryAPI) Weights(ctx context.Context) ([]workout.WeightEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]workout.WeightEntry(nil), f.weights...), f.err
}

func (f *memoryAPI) DeleteRecentWeight(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.write(); err != nil {
		return err
	}
	if n := len(f.weights); n > 0 {
		f.weights = f.weights[:n-1]
	}
	return nil
}

func (f *memoryAPI) WeightTrend(ctx context.Context) (workout.WeightTrend, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.trend == nil {
		return workout.WeightTrend{}, &api.Error{Status: 404, Message: "not enough data"}
	}
	return *f.trend, f.err
}

func (f *memoryAPI) Injuries(ctx context.Context) ([]workout.Injury, error)       { return nil, f.err }
func (f *memoryAPI) ActiveInjuries(ctx context.Context) ([]workout.Injury, error) { return nil, f.err }
func (f *memoryAPI) LogInjury(ctx context.Context, req api.InjuryRequest) error   { return f.err }
func (f *memoryAPI) SetInjuryActive(ctx context.Context, timestamp int64, active bool) error {
	return f.err
}
func (f *memoryAPI) Bodyparts(ctx context.Context) ([]string, error)         { return nil, f.err }
func (f *memoryAPI) AddBodypart(ctx context.Context, location string) error    { return f.err }
func (f *memoryAPI) DeleteBodypart(ctx context.Context, location string) error { return f.err }
func (f *memoryAPI) Analysis(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{}`), f.err
}
func (f *memoryAPI) GenerateAnalysis(ctx context.Context) (string, error) { return "", f.err }

var _ service.API = (*memoryAPI)(nil)

func ts(day, hour, min int) int64 {
	return time.Date(2024, 3, day, hour, min, 0, 0, time.UTC).Unix()
}

func sampleAPI() *memoryAPI {
	return &memoryAPI{
		exercises: []string{"Bench Press", "Deadlift", "Front Squat", "Squat"},
		sets: []workout.WorkoutSet{
			{WorkoutID: "w1", Timestamp: ts(15, 9, 0), Exercise: "Squat", Reps: "5", SetNumber: 1, Weight: 225},
			{WorkoutID: "w2", Timestamp: ts(15, 9, 10), Exercise: "Squat", Reps: "5", SetNumber: 2, Weight: 235, WeightModulation: workout.ModulationCutting},
			{WorkoutID: "w3", Timestamp: ts(15, 9, 30), Exercise: "Bench Press", Reps: "8 or below", SetNumber: 1, Weight: 185},
			{WorkoutID: "w4", Timestamp: ts(13, 8, 0), Exercise: "Squat", Reps: "3", SetNumber: 1, Weight: 245},
		},
		weights: []workout.WeightEntry{
			{Timestamp: ts(1, 7, 0), Weight: 184},
			{Timestamp: ts(8, 7, 0), Weight: 183},
			{Timestamp: ts(15, 7, 0), Weight: 182},
		},
		trend: &workout.WeightTrend{Date: "2024-03-15", Slope: -1.0 / 7},
	}
}

func setupTestServices(t *testing.T, backend service.API) *service.Services {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.APIURL = "http://gainsiq.test"
	cfg.APIKey = "test-key-1234"
	cfg.Timezone = "UTC"
	clock := func() time.Time { return testNow }
	return &service.Services{
		Exercise: service.NewExerciseService(backend),
		Set:      service.NewSetService(backend, cfg, clock),
		Weight:   service.NewWeightService(backend, cfg, clock),
		Progress: service.NewProgressService(backend, cfg, clock),
		Injury:   service.NewInjuryService(backend, clock),
		Bodypart: service.NewBodypartService(backend),
		Analysis: service.NewAnalysisService(backend),
		Config:   service.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), cfg),
	}
}

func testStyles() (ui.Styles, ui.KeyMap) {
	return ui.DefaultStyles(), ui.DefaultKeyMap()
}

const testUnit = units.Pounds

// keyRunes builds a key message for typed characters
func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd and returns its message, unwrapping batches to the first non-nil message
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if m := c(); m != nil {
				return m
			}
		}
		return nil
	}
	return msg
}

// typeInto sends every rune of s as a separate key press
func typeInto[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
