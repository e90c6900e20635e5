package service

import (
	"context"
	"strings"
	"time"

	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
)

// DefaultProgressMonths is the lookback when no start date is given
const DefaultProgressMonths = 6

// ProgressService aggregates an exercise's history per day
type ProgressService struct {
	api    SetAPI
	config config.Config
	now    func() time.Time
}

// NewProgressService creates a new ProgressService
func NewProgressService(backend SetAPI, cfg config.Config, now func() time.Time) *ProgressService {
	return &ProgressService{api: backend, config: cfg, now: now}
}

// ForExercise returns the daily buckets of exercise within r.
// An unbounded start defaults to DefaultProgressMonths before now.
func (s *ProgressService) ForExercise(ctx context.Context, exercise string, r timeutil.Range) (*ProgressResult, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return nil, ErrEmptyExercise
	}

	loc := s.config.Location()
	if r.End.IsZero() {
		r.End = timeutil.EndOfDay(s.now().In(loc))
	}
	if r.Start.IsZero() {
		r.Start = timeutil.LastMonths(r.End, DefaultProgressMonths).Start
	}

	start, end := r.Unix()
	sets, err := s.api.SetsByExercise(ctx, exercise, start, end)
	if err != nil {
		return nil, err
	}

	return &ProgressResult{
		Exercise: exercise,
		Range:    r,
		Buckets:  stats.AggregateByDay(sets, loc),
		SetCount: len(sets),
	}, nil
}
