// Package stats computes the derived numbers shown by the client: per-day
// exercise averages with an estimated one-rep-max, session summaries and the
// projected bodyweight trend line.
package stats

import (
	"sort"
	"time"

	"github.com/gainsiq/gainsiq/internal/workout"
)

// Brzycki formula coefficients
const (
	brzyckiIntercept = 1.0278
	brzyckiSlope     = 0.0278
)

// DayBucket holds the averages of all sets of one exercise on one calendar day
type DayBucket struct {
	Date         time.Time // Start of the local calendar day
	AvgWeight    float64   // Pounds
	AvgReps      float64
	Estimated1RM float64 // Pounds
	SetCount     int
	Cutting      bool // True if any set that day was logged while cutting
}

// EstimateOneRepMax estimates a one-rep-max with the Brzycki formula.
// Returns 0 when avgReps <= 0, and also when the formula's denominator is not
// positive (37 reps and above) where the estimate is meaningless.
func EstimateOneRepMax(avgWeight, avgReps float64) float64 {
	if avgReps <= 0 {
		return 0
	}
	denominator := brzyckiIntercept - brzyckiSlope*avgReps
	if denominator <= 0 {
		return 0
	}
	return avgWeight / denominator
}

// AggregateByDay groups sets by the calendar day of their timestamp in loc and
// averages weight and reps per day. Reps are parsed leniently with
// workout.ParseReps. Sets without a timestamp are skipped.
// Buckets are returned newest day first.
func AggregateByDay(sets []workout.WorkoutSet, loc *time.Location) []DayBucket {
	if loc == nil {
		loc = time.Local
	}

	type accumulator struct {
		date        time.Time
		totalWeight float64
		totalReps   float64
		count       int
		cutting     bool
	}

	byDay := make(map[string]*accumulator)
	for _, s := range sets {
		if s.Timestamp == 0 {
			continue
		}
		t := time.Unix(s.Timestamp, 0).In(loc)
		dayKey := t.Format("2006-01-02")

		acc, ok := byDay[dayKey]
		if !ok {
			acc = &accumulator{
				date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
			}
			byDay[dayKey] = acc
		}
		acc.totalWeight += s.Weight
		acc.totalReps += workout.ParseReps(s.Reps)
		acc.count++
		if s.IsCutting() {
			acc.cutting = true
		}
	}

	buckets := make([]DayBucket, 0, len(byDay))
	for _, acc := range byDay {
		avgWeight := acc.totalWeight / float64(acc.count)
		avgReps := acc.totalReps / float64(acc.count)
		buckets = append(buckets, DayBucket{
			Date:         acc.date,
			AvgWeight:    avgWeight,
			AvgReps:      avgReps,
			Estimated1RM: EstimateOneRepMax(avgWeight, avgReps),
			SetCount:     acc.count,
			Cutting:      acc.cutting,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})

	return buckets
}

// ChartMode selects how exercise progress is charted
type ChartMode int

const (
	// ChartAverage shows average weight and reps per day
	ChartAverage ChartMode = iota
	// ChartOneRepMax shows the estimated one-rep-max per day
	ChartOneRepMax
)

// Toggle flips between the two chart modes
func (m ChartMode) Toggle() ChartMode {
	if m == ChartAverage {
		return ChartOneRepMax
	}
	return ChartAverage
}

// String returns the short name of the mode
func (m ChartMode) String() string {
	if m == ChartOneRepMax {
		return "1rm"
	}
	return "avg"
}

// Value returns the charted value of the bucket in mode, in pounds
func (b DayBucket) Value(mode ChartMode) float64 {
	if mode == ChartOneRepMax {
		return b.Estimated1RM
	}
	return b.AvgWeight
}

// SessionStats summarizes a list of sets, typically one day of training
type SessionStats struct {
	Count     int
	Exercises int
	Volume    float64 // Sum of reps x weight, in pounds
}

// SummarizeSession counts sets and distinct exercises and sums the volume
func SummarizeSession(sets []workout.WorkoutSet) SessionStats {
	exercises := make(map[string]struct{})
	var volume float64
	for _, s := range sets {
		exercises[s.Exercise] = struct{}{}
		volume += workout.ParseReps(s.Reps) * s.Weight
	}
	return SessionStats{
		Count:     len(sets),
		Exercises: len(exercises),
		Volume:    volume,
	}
}

// LastSetWithin returns the newest set logged within window before now
func LastSetWithin(sets []workout.WorkoutSet, now time.Time, window time.Duration) (workout.WorkoutSet, bool) {
	var latest workout.WorkoutSet
	found := false
	for _, s := range sets {
		if !found || s.Timestamp > latest.Timestamp {
			latest = s
			found = true
		}
	}
	if !found {
		return workout.WorkoutSet{}, false
	}
	if latest.Time().Before(now.Add(-window)) {
		return workout.WorkoutSet{}, false
	}
	return latest, true
}

// SortSetsByTime sorts sets by timestamp, oldest first when ascending
func SortSetsByTime(sets []workout.WorkoutSet, ascending bool) {
	sort.SliceStable(sets, func(i, j int) bool {
		if ascending {
			return sets[i].Timestamp < sets[j].Timestamp
		}
		return sets[i].Timestamp > sets[j].Timestamp
	})
}
