// Package service provides the application layer of gainsiq.
// It validates user input, converts units and calls the GainsIQ API,
// providing one API for both CLI and TUI frontends.
package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/timeutil"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// ExerciseAPI is the part of the API used by ExerciseService
type ExerciseAPI interface {
	Exercises(ctx context.Context) ([]string, error)
	AddExercise(ctx context.Context, name string) error
	DeleteExercise(ctx context.Context, name string) error
}

// SetAPI is the part of the API used by SetService and ProgressService
type SetAPI interface {
	LogSet(ctx context.Context, req api.LogSetRequest) error
	BatchLogSets(ctx context.Context, reqs []api.LogSetRequest) error
	LastMonthSets(ctx context.Context) ([]workout.WorkoutSet, error)
	Sets(ctx context.Context, start, end int64) ([]workout.WorkoutSet, error)
	SetsByExercise(ctx context.Context, exercise string, start, end int64) ([]workout.WorkoutSet, error)
	EditSet(ctx context.Context, req api.EditSetRequest) error
	DeleteSet(ctx context.Context, key workout.SetKey) error
	PopLastSet(ctx context.Context) (string, error)
}

// WeightAPI is the part of the API used by WeightService
type WeightAPI interface {
	LogWeight(ctx context.Context, pounds float64) error
	Weights(ctx context.Context) ([]workout.WeightEntry, error)
	DeleteRecentWeight(ctx context.Context) error
	WeightTrend(ctx context.Context) (workout.WeightTrend, error)
}

// InjuryAPI is the part of the API used by InjuryService
type InjuryAPI interface {
	Injuries(ctx context.Context) ([]workout.Injury, error)
	ActiveInjuries(ctx context.Context) ([]workout.Injury, error)
	LogInjury(ctx context.Context, req api.InjuryRequest) error
	SetInjuryActive(ctx context.Context, timestamp int64, active bool) error
}

// BodypartAPI is the part of the API used by BodypartService
type BodypartAPI interface {
	Bodyparts(ctx context.Context) ([]string, error)
	AddBodypart(ctx context.Context, location string) error
	DeleteBodypart(ctx context.Context, location string) error
}

// AnalysisAPI is the part of the API used by AnalysisService
type AnalysisAPI interface {
	Analysis(ctx context.Context) (json.RawMessage, error)
	GenerateAnalysis(ctx context.Context) (string, error)
}

// API is the full GainsIQ API, implemented by *api.Client
type API interface {
	ExerciseAPI
	SetAPI
	WeightAPI
	InjuryAPI
	BodypartAPI
	AnalysisAPI
}

// LogInput describes one set to log, as entered by the user
type LogInput struct {
	Exercise  string
	Reps      string
	Weight    float64
	Unit      units.Unit // Empty means the configured unit
	SetNumber int        // 0 lets the backend number the set
	Phase     string     // Empty means the configured phase
	At        time.Time  // Zero means now, stamped by the backend
}

// EditInput lists the changes to apply to a set. Nil fields are unchanged.
type EditInput struct {
	Reps      *string
	Weight    *float64
	Unit      units.Unit
	SetNumber *int
}

// IndexedSet is a set with its 1-based position in a listing
type IndexedSet struct {
	Set   workout.WorkoutSet
	Index int
}

// ListResult contains the sets of a time range, oldest first
type ListResult struct {
	Sets  []IndexedSet
	Stats stats.SessionStats
	Range timeutil.Range
}

// WeightOverview is everything the weight screen shows
type WeightOverview struct {
	Entries    []workout.WeightEntry // Oldest first
	Trend      *workout.WeightTrend  // Nil when the trend could not be loaded
	Summary    stats.WeightSummary
	Projection []stats.TrendPoint
}

// ProgressResult contains the daily aggregates of one exercise
type ProgressResult struct {
	Exercise string
	Range    timeutil.Range
	Buckets  []stats.DayBucket // Newest first
	SetCount int
}
