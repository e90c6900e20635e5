package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// DefaultLastSetWindow is how far back the "last set" banner looks
const DefaultLastSetWindow = 12 * time.Hour

// Common errors for the set service
var (
	ErrInvalidIndex      = errors.New("invalid set index")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNoSets            = errors.New("no sets found")
	ErrNoChanges         = errors.New("at least one change must be specified")
	ErrInvalidSetNumber  = errors.New("set number must not be negative")
	ErrTimestampInFuture = errors.New("timestamp cannot be in the future")
)

// SetService logs and manages workout sets
type SetService struct {
	api    SetAPI
	config config.Config
	now    func() time.Time
}

// NewSetService creates a new SetService
func NewSetService(backend SetAPI, cfg config.Config, now func() time.Time) *SetService {
	return &SetService{api: backend, config: cfg, now: now}
}

// Unit returns the configured display unit
func (s *SetService) Unit() units.Unit {
	return s.config.DisplayUnit()
}

// Location returns the configured timezone
func (s *SetService) Location() *time.Location {
	return s.config.Location()
}

// Now returns the current time in the configured timezone
func (s *SetService) Now() time.Time {
	return s.now().In(s.config.Location())
}

// Log validates and records one set. It returns the request that was sent.
func (s *SetService) Log(ctx context.Context, in LogInput) (api.LogSetRequest, error) {
	req, err := s.buildRequest(in)
	if err != nil {
		return api.LogSetRequest{}, err
	}
	if err := s.api.LogSet(ctx, req); err != nil {
		return api.LogSetRequest{}, err
	}
	log.Debugf("logged set: %s %s x %.2f lbs", req.Exercise, req.Reps, req.Weight)
	return req, nil
}

// BatchLog validates every row first and reports all invalid rows at once.
// Nothing is sent unless all rows are valid.
func (s *SetService) BatchLog(ctx context.Context, inputs []LogInput) ([]api.LogSetRequest, error) {
	if len(inputs) == 0 {
		return nil, ErrNoSets
	}

	reqs := make([]api.LogSetRequest, 0, len(inputs))
	var errs error
	for i, in := range inputs {
		req, err := s.buildRequest(in)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		reqs = append(reqs, req)
	}
	if errs != nil {
		return nil, errs
	}

	if err := s.api.BatchLogSets(ctx, reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (s *SetService) buildRequest(in LogInput) (api.LogSetRequest, error) {
	exercise := strings.TrimSpace(in.Exercise)
	if exercise == "" {
		return api.LogSetRequest{}, ErrEmptyExercise
	}

	reps, err := workout.NormalizeReps(in.Reps)
	if err != nil {
		return api.LogSetRequest{}, err
	}

	if in.Weight <= 0 || math.IsNaN(in.Weight) || math.IsInf(in.Weight, 0) {
		return api.LogSetRequest{}, workout.ErrInvalidWeight
	}

	if in.SetNumber < 0 {
		return api.LogSetRequest{}, ErrInvalidSetNumber
	}

	unit := in.Unit
	if unit == "" {
		unit = s.config.DisplayUnit()
	}

	phase := in.Phase
	if phase == "" {
		phase = s.config.Phase
	}
	modulation, err := workout.ParsePhase(phase)
	if err != nil {
		return api.LogSetRequest{}, err
	}

	req := api.LogSetRequest{
		Exercise: exercise,
		Reps:     reps,
		Sets:     in.SetNumber,
		Weight:   units.WirePounds(in.Weight, unit),
	}

	if modulation != "" {
		cutting := modulation == workout.ModulationCutting
		req.IsCutting = &cutting
	}

	if !in.At.IsZero() {
		if in.At.After(s.now()) {
			return api.LogSetRequest{}, ErrTimestampInFuture
		}
		req.Timestamp = in.At.Unix()
	}

	return req, nil
}

// Recent returns the sets of the last month, newest first
func (s *SetService) Recent(ctx context.Context) ([]workout.WorkoutSet, error) {
	sets, err := s.api.LastMonthSets(ctx)
	if err != nil {
		return nil, err
	}
	stats.SortSetsByTime(sets, false)
	return sets, nil
}

// List returns the sets within r, oldest first and indexed from 1
func (s *SetService) List(ctx context.Context, r timeutil.Range) (*ListResult, error) {
	start, end := r.Unix()
	sets, err := s.api.Sets(ctx, start, end)
	if err != nil {
		return nil, err
	}
	stats.SortSetsByTime(sets, true)

	result := &ListResult{
		Sets:  make([]IndexedSet, len(sets)),
		Stats: stats.SummarizeSession(sets),
		Range: r,
	}
	for i, set := range sets {
		result.Sets[i] = IndexedSet{Set: set, Index: i + 1}
	}
	return result, nil
}

// ForDay returns the sets logged on the calendar day of day, in the configured timezone
func (s *SetService) ForDay(ctx context.Context, day time.Time) (*ListResult, error) {
	return s.List(ctx, timeutil.Day(day.In(s.config.Location())))
}

// Today returns the sets logged today
func (s *SetService) Today(ctx context.Context) (*ListResult, error) {
	return s.ForDay(ctx, s.now())
}

// Resolve returns the set at the 1-based index of the day's listing
func (s *SetService) Resolve(ctx context.Context, day time.Time, index int) (workout.WorkoutSet, error) {
	if index < 1 {
		return workout.WorkoutSet{}, ErrInvalidIndex
	}

	result, err := s.ForDay(ctx, day)
	if err != nil {
		return workout.WorkoutSet{}, err
	}
	if len(result.Sets) == 0 {
		return workout.WorkoutSet{}, ErrNoSets
	}
	if index > len(result.Sets) {
		return workout.WorkoutSet{}, fmt.Errorf("%w: %d (day has %d sets)", ErrIndexOutOfRange, index, len(result.Sets))
	}
	return result.Sets[index-1].Set, nil
}

// Edit applies the changes in edit to the set identified by key
func (s *SetService) Edit(ctx context.Context, key workout.SetKey, edit EditInput) error {
	if edit.Reps == nil && edit.Weight == nil && edit.SetNumber == nil {
		return ErrNoChanges
	}

	req := api.EditSetRequest{WorkoutID: key.WorkoutID, Timestamp: key.Timestamp}

	if edit.Reps != nil {
		reps, err := workout.NormalizeReps(*edit.Reps)
		if err != nil {
			return err
		}
		req.Reps = &reps
	}

	if edit.Weight != nil {
		w := *edit.Weight
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return workout.ErrInvalidWeight
		}
		unit := edit.Unit
		if unit == "" {
			unit = s.config.DisplayUnit()
		}
		pounds := units.WirePounds(w, unit)
		req.Weight = &pounds
	}

	if edit.SetNumber != nil {
		if *edit.SetNumber < 0 {
			return ErrInvalidSetNumber
		}
		n := *edit.SetNumber
		req.Sets = &n
	}

	return s.api.EditSet(ctx, req)
}

// Delete removes the set identified by key
func (s *SetService) Delete(ctx context.Context, key workout.SetKey) error {
	return s.api.DeleteSet(ctx, key)
}

// Pop removes the most recently logged set and returns the server message
func (s *SetService) Pop(ctx context.Context) (string, error) {
	return s.api.PopLastSet(ctx)
}

// LastSet returns the newest set logged within window
func (s *SetService) LastSet(ctx context.Context, window time.Duration) (workout.WorkoutSet, bool, error) {
	sets, err := s.api.LastMonthSets(ctx)
	if err != nil {
		return workout.WorkoutSet{}, false, err
	}
	set, ok := stats.LastSetWithin(sets, s.now(), window)
	return set, ok, nil
}
