package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// fakeAPI is an in-memory API backend recording the requests it receives
type fakeAPI struct {
	exercises []string
	sets      []workout.WorkoutSet
	weights   []workout.WeightEntry
	trend     *workout.WeightTrend
	injuries  []workout.Injury
	bodyparts []string
	analysis  json.RawMessage

	err      error // returned by every call when set
	trendErr error

	logged      []api.LogSetRequest
	batches     [][]api.LogSetRequest
	edits       []api.EditSetRequest
	deleted     []workout.SetKey
	weightLogs  []float64
	injuryLogs  []api.InjuryRequest
	activeCalls []injuryActiveCall
	lastRange   [2]int64
	lastQuery   string
	added       []string
	removed     []string
	popped      int
	generated   int
	dropWeights int
}

type injuryActiveCall struct {
	timestamp int64
	active    bool
}

func (f *fakeAPI) Exercises(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string{}, f.exercises...), nil
}

func (f *fakeAPI) AddExercise(ctx context.Context, name string) error {
	f.added = append(f.added, name)
	return f.err
}

func (f *fakeAPI) DeleteExercise(ctx context.Context, name string) error {
	f.removed = append(f.removed, name)
	return f.err
}

func (f *fakeAPI) LogSet(ctx context.Context, req api.LogSetRequest) error {
	if f.err != nil {
		return f.err
	}
	f.logged = append(f.logged, req)
	return nil
}

func (f *fakeAPI) BatchLogSets(ctx context.Context, reqs []api.LogSetRequest) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, reqs)
	return nil
}

func (f *fakeAPI) LastMonthSets(ctx context.Context) ([]workout.WorkoutSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]workout.WorkoutSet{}, f.sets...), nil
}

func (f *fakeAPI) Sets(ctx context.Context, start, end int64) ([]workout.WorkoutSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastRange = [2]int64{start, end}
	var out []workout.WorkoutSet
	for _, s := range f.sets {
		if s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAPI) SetsByExercise(ctx context.Context, exercise string, start, end int64) ([]workout.WorkoutSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastQuery = exercise
	f.lastRange = [2]int64{start, end}
	var out []workout.WorkoutSet
	for _, s := range f.sets {
		if s.Exercise == exercise && s.Timestamp >= start && s.Timestamp <= end {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeAPI) EditSet(ctx context.Context, req api.EditSetRequest) error {
	f.edits = append(f.edits, req)
	return f.err
}

func (f *fakeAPI) DeleteSet(ctx context.Context, key workout.SetKey) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

func (f *fakeAPI) PopLastSet(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.popped++
	return "Popped last set", nil
}

func (f *fakeAPI) LogWeight(ctx context.Context, pounds float64) error {
	if f.err != nil {
		return f.err
	}
	f.weightLogs = append(f.weightLogs, pounds)
	return nil
}

func (f *fakeAPI) Weights(ctx context.Context) ([]workout.WeightEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]workout.WeightEntry{}, f.weights...), nil
}

func (f *fakeAPI) DeleteRecentWeight(ctx context.Context) error {
	f.dropWeights++
	return f.err
}

func (f *fakeAPI) WeightTrend(ctx context.Context) (workout.WeightTrend, error) {
	if f.trendErr != nil {
		return workout.WeightTrend{}, f.trendErr
	}
	if f.trend == nil {
		return workout.WeightTrend{}, nil
	}
	return *f.trend, nil
}

func (f *fakeAPI) Injuries(ctx context.Context) ([]workout.Injury, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]workout.Injury{}, f.injuries...), nil
}

func (f *fakeAPI) ActiveInjuries(ctx context.Context) ([]workout.Injury, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []workout.Injury
	for _, i := range f.injuries {
		if i.Active {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeAPI) LogInjury(ctx context.Context, req api.InjuryRequest) error {
	f.injuryLogs = append(f.injuryLogs, req)
	return f.err
}

func (f *fakeAPI) SetInjuryActive(ctx context.Context, timestamp int64, active bool) error {
	f.activeCalls = append(f.activeCalls, injuryActiveCall{timestamp, active})
	return f.err
}

func (f *fakeAPI) Bodyparts(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]string{}, f.bodyparts...), nil
}

func (f *fakeAPI) AddBodypart(ctx context.Context, location string) error {
	f.added = append(f.added, location)
	return f.err
}

func (f *fakeAPI) DeleteBodypart(ctx context.Context, location string) error {
	f.removed = append(f.removed, location)
	return f.err
}

func (f *fakeAPI) Analysis(ctx context.Context) (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

func (f *fakeAPI) GenerateAnalysis(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.generated++
	return "Analysis started", nil
}

var _ API = (*fakeAPI)(nil)
var _ API = (*api.Client)(nil)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
