package workout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common parse errors
var (
	ErrInvalidWeight = errors.New("weight must be a positive number")
	ErrEmptyReps     = errors.New("reps cannot be empty")
)

// ParseReps extracts the numeric rep count from a free-form reps value.
// Only the leading number is read, so "5 or below" and "8-10" yield 5 and 8.
// A value without a leading number yields 0.
func ParseReps(reps string) float64 {
	s := strings.TrimSpace(reps)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if digits > 0 && end+1 < len(s) && s[end] == '.' && isDigit(s[end+1]) {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
		}
	}
	if digits == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ParseWeight parses a user-entered weight. The value must be a finite positive number.
func ParseWeight(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight '%s': %w", input, ErrInvalidWeight)
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid weight '%s': %w", input, ErrInvalidWeight)
	}
	return v, nil
}

// NormalizeReps trims a reps value and rejects empty input
func NormalizeReps(reps string) (string, error) {
	reps = strings.TrimSpace(reps)
	if reps == "" {
		return "", ErrEmptyReps
	}
	return reps, nil
}

// ParsePhase maps a phase name to a weight modulation value.
// An empty phase returns an empty modulation.
func ParsePhase(phase string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(phase)) {
	case "":
		return "", nil
	case "cut", "cutting":
		return ModulationCutting, nil
	case "bulk", "bulking":
		return ModulationBulking, nil
	default:
		return "", fmt.Errorf("unknown phase '%s' (use cutting or bulking)", phase)
	}
}
