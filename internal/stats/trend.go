package stats

import (
	"sort"
	"time"

	"github.com/gainsiq/gainsiq/internal/workout"
)

const (
	msPerDay = float64(24 * 60 * 60 * 1000)

	// ProjectionDays is how far forward the trend line is projected
	ProjectionDays = 30
	// ProjectionPoints is the number of sampled points on the trend line
	ProjectionPoints = 10
)

// TrendPoint is one sample on the projected bodyweight line
type TrendPoint struct {
	Time   time.Time
	Weight float64 // Pounds
}

// ProjectTrend projects the backend slope forward from the most recent sample.
// The line passes through last and is sampled at ProjectionPoints evenly
// spaced instants from now to now+ProjectionDays inclusive.
func ProjectTrend(trend workout.WeightTrend, last workout.WeightEntry, now time.Time) []TrendPoint {
	if last.Timestamp == 0 {
		return nil
	}

	slopePerMs := trend.Slope / msPerDay
	lastMs := float64(last.Timestamp) * 1000
	yIntercept := last.Weight - slopePerMs*lastMs

	start := now
	end := now.Add(ProjectionDays * 24 * time.Hour)
	step := end.Sub(start) / time.Duration(ProjectionPoints-1)

	points := make([]TrendPoint, 0, ProjectionPoints)
	for i := 0; i < ProjectionPoints; i++ {
		t := start.Add(step * time.Duration(i))
		tMs := float64(t.UnixMilli())
		points = append(points, TrendPoint{
			Time:   t,
			Weight: yIntercept + slopePerMs*tMs,
		})
	}
	return points
}

// WeightSummary is the header of the bodyweight view
type WeightSummary struct {
	Count        int
	Average      float64 // Pounds
	Latest       workout.WeightEntry
	HasTrend     bool
	WeeklyChange float64 // Pounds per week, valid when HasTrend
}

// SummarizeWeights computes count, average and latest sample. trend may be nil.
func SummarizeWeights(entries []workout.WeightEntry, trend *workout.WeightTrend) WeightSummary {
	summary := WeightSummary{Count: len(entries)}
	if trend != nil {
		summary.HasTrend = true
		summary.WeeklyChange = trend.Slope * 7
	}
	if len(entries) == 0 {
		return summary
	}

	var total float64
	for i, e := range entries {
		total += e.Weight
		if i == 0 || e.Timestamp > summary.Latest.Timestamp {
			summary.Latest = e
		}
	}
	summary.Average = total / float64(len(entries))
	return summary
}

// SortWeightsByTime sorts bodyweight samples oldest first
func SortWeightsByTime(entries []workout.WeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
