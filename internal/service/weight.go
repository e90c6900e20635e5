package service

import (
	"context"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/stats"
	"github.com/gainsiq/gainsiq/internal/units"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// WeightService tracks bodyweight
type WeightService struct {
	api    WeightAPI
	config config.Config
	now    func() time.Time
}

// NewWeightService creates a new WeightService
func NewWeightService(backend WeightAPI, cfg config.Config, now func() time.Time) *WeightService {
	return &WeightService{api: backend, config: cfg, now: now}
}

// Log records a bodyweight sample entered in unit (empty means configured unit).
// It returns the pound value that was sent.
func (s *WeightService) Log(ctx context.Context, value float64, unit units.Unit) (float64, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, workout.ErrInvalidWeight
	}
	if unit == "" {
		unit = s.config.DisplayUnit()
	}

	pounds := units.WirePounds(value, unit)
	if err := s.api.LogWeight(ctx, pounds); err != nil {
		return 0, err
	}
	return pounds, nil
}

// List returns every sample, oldest first
func (s *WeightService) List(ctx context.Context) ([]workout.WeightEntry, error) {
	entries, err := s.api.Weights(ctx)
	if err != nil {
		return nil, err
	}
	stats.SortWeightsByTime(entries)
	return entries, nil
}

// DeleteRecent removes the most recent sample
func (s *WeightService) DeleteRecent(ctx context.Context) error {
	return s.api.DeleteRecentWeight(ctx)
}

// Trend returns the backend's weight trend
func (s *WeightService) Trend(ctx context.Context) (workout.WeightTrend, error) {
	return s.api.WeightTrend(ctx)
}

// Overview loads samples and trend and derives summary and projection.
// A failing trend request leaves Trend nil instead of failing the overview.
func (s *WeightService) Overview(ctx context.Context) (*WeightOverview, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	overview := &WeightOverview{Entries: entries}

	trend, err := s.api.WeightTrend(ctx)
	if err != nil {
		log.Debugf("weight trend unavailable: %s", err)
	} else {
		overview.Trend = &trend
	}

	overview.Summary = stats.SummarizeWeights(entries, overview.Trend)
	if overview.Trend != nil && len(entries) > 0 {
		overview.Projection = stats.ProjectTrend(*overview.Trend, overview.Summary.Latest, s.now())
	}

	return overview, nil
}
