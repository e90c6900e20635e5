// Package workout holds the records exchanged with the GainsIQ API.
package workout

import "time"

// Weight modulation values attached to a logged set
const (
	ModulationCutting = "Cutting"
	ModulationBulking = "Bulking"
)

// WorkoutSet is one logged set. Weight is always stored in pounds.
type WorkoutSet struct {
	WorkoutID        string  `json:"workoutId"`
	Timestamp        int64   `json:"timestamp"`
	Exercise         string  `json:"exercise"`
	Reps             string  `json:"reps"`
	SetNumber        int     `json:"sets"`
	Weight           float64 `json:"weight"`
	WeightModulation string  `json:"weight_modulation,omitempty"`
}

// SetKey is the natural key the API uses to address a set for edit and delete
type SetKey struct {
	WorkoutID string `json:"workoutId"`
	Timestamp int64  `json:"timestamp"`
}

// Key returns the natural key of the set
func (s WorkoutSet) Key() SetKey {
	return SetKey{WorkoutID: s.WorkoutID, Timestamp: s.Timestamp}
}

// Time returns the set timestamp as a time.Time in the local zone
func (s WorkoutSet) Time() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// IsCutting reports whether the set was logged during a cutting phase
func (s WorkoutSet) IsCutting() bool {
	return s.WeightModulation == ModulationCutting
}

// WeightEntry is one bodyweight sample in pounds
type WeightEntry struct {
	Timestamp int64   `json:"timestamp"`
	Weight    float64 `json:"weight"`
}

// Time returns the sample timestamp as a time.Time in the local zone
func (w WeightEntry) Time() time.Time {
	return time.Unix(w.Timestamp, 0)
}

// WeightTrend is the backend-computed regression over recent bodyweight.
// Slope is in pounds per day.
type WeightTrend struct {
	Date  string  `json:"date"`
	Slope float64 `json:"slope"`
}

// Injury is an entry of the injury log
type Injury struct {
	Timestamp int64  `json:"timestamp"`
	Location  string `json:"location"`
	Active    bool   `json:"active"`
	Details   string `json:"details,omitempty"`
}
