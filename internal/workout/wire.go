package workout

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The API is inconsistent about numbers: depending on the endpoint they come
// back as JSON numbers or as numeric strings. Unparsable values decode to zero
// so one malformed row does not fail a whole listing.

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s, isString, err := rawScalar(b)
	if err != nil {
		return err
	}
	if s == "" || (!isString && s == "null") {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

type flexInt int64

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	v, _, err := rawScalar(b)
	if err != nil {
		return err
	}
	if v == "null" {
		v = ""
	}
	*s = flexString(v)
	return nil
}

type flexBool bool

func (fb *flexBool) UnmarshalJSON(b []byte) error {
	v, _, err := rawScalar(b)
	if err != nil {
		return err
	}
	*fb = flexBool(strings.EqualFold(v, "true"))
	return nil
}

// rawScalar returns the textual value of a JSON scalar and whether it was quoted.
func rawScalar(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", true, err
		}
		return strings.TrimSpace(s), true, nil
	}
	return string(b), false, nil
}

type workoutSetWire struct {
	WorkoutID        flexString `json:"workoutId"`
	Timestamp        flexInt    `json:"timestamp"`
	Exercise         flexString `json:"exercise"`
	Reps             flexString `json:"reps"`
	Sets             flexInt    `json:"sets"`
	Weight           flexFloat  `json:"weight"`
	WeightModulation flexString `json:"weight_modulation"`
}

// UnmarshalJSON accepts both numeric and string encodings of numeric fields.
func (s *WorkoutSet) UnmarshalJSON(b []byte) error {
	var w workoutSetWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*s = WorkoutSet{
		WorkoutID:        string(w.WorkoutID),
		Timestamp:        int64(w.Timestamp),
		Exercise:         string(w.Exercise),
		Reps:             string(w.Reps),
		SetNumber:        int(w.Sets),
		Weight:           float64(w.Weight),
		WeightModulation: string(w.WeightModulation),
	}
	return nil
}

type weightEntryWire struct {
	Timestamp flexInt   `json:"timestamp"`
	Weight    flexFloat `json:"weight"`
}

// UnmarshalJSON accepts both numeric and string encodings.
func (w *WeightEntry) UnmarshalJSON(b []byte) error {
	var wire weightEntryWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*w = WeightEntry{Timestamp: int64(wire.Timestamp), Weight: float64(wire.Weight)}
	return nil
}

type weightTrendWire struct {
	Date  flexString `json:"date"`
	Slope flexFloat  `json:"slope"`
}

// UnmarshalJSON accepts both numeric and string encodings of the slope.
func (t *WeightTrend) UnmarshalJSON(b []byte) error {
	var wire weightTrendWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*t = WeightTrend{Date: string(wire.Date), Slope: float64(wire.Slope)}
	return nil
}

type injuryWire struct {
	Timestamp flexInt    `json:"timestamp"`
	Location  flexString `json:"location"`
	Active    flexBool   `json:"active"`
	Details   flexString `json:"details"`
}

// UnmarshalJSON decodes "true"/"false" strings as well as JSON booleans.
func (in *Injury) UnmarshalJSON(b []byte) error {
	var wire injuryWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	*in = Injury{
		Timestamp: int64(wire.Timestamp),
		Location:  string(wire.Location),
		Active:    bool(wire.Active),
		Details:   string(wire.Details),
	}
	return nil
}
