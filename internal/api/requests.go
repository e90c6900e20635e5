package api

import "github.com/gainsiq/gainsiq/internal/workout"

// LogSetRequest is the body of POST /sets/log and one row of /sets/batch.
// Weight is in pounds.
type LogSetRequest struct {
	Exercise  string  `json:"exercise"`
	Reps      string  `json:"reps"`
	Sets      int     `json:"sets,omitempty"`
	Weight    float64 `json:"weight"`
	IsCutting *bool   `json:"isCutting,omitempty"`
	Timestamp int64   `json:"timestamp,omitempty"`
}

type batchLogSetsRequest struct {
	Sets []LogSetRequest `json:"sets"`
}

// EditSetRequest is the body of PUT /sets/edit. Nil fields are left unchanged.
type EditSetRequest struct {
	WorkoutID string   `json:"workoutId"`
	Timestamp int64    `json:"timestamp"`
	Reps      *string  `json:"reps,omitempty"`
	Sets      *int     `json:"sets,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
}

type deleteSetRequest struct {
	WorkoutID string `json:"workoutId"`
	Timestamp int64  `json:"timestamp"`
}

func newDeleteSetRequest(key workout.SetKey) deleteSetRequest {
	return deleteSetRequest{WorkoutID: key.WorkoutID, Timestamp: key.Timestamp}
}

type exerciseRequest struct {
	ExerciseName string `json:"exercise_name"`
}

type weightRequest struct {
	Weight float64 `json:"weight"`
}

// InjuryRequest is the body of POST /injury
type InjuryRequest struct {
	Timestamp int64  `json:"timestamp,omitempty"`
	Location  string `json:"location"`
	Details   string `json:"details,omitempty"`
	Active    *bool  `json:"active,omitempty"`
}

type injuryActiveRequest struct {
	Timestamp int64 `json:"timestamp"`
	Active    bool  `json:"active"`
}

type bodypartRequest struct {
	Location string `json:"location"`
}
