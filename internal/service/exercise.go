package service

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrEmptyExercise is returned when an exercise name is blank
var ErrEmptyExercise = errors.New("exercise name cannot be empty")

// ExerciseService manages the exercise catalog
type ExerciseService struct {
	api ExerciseAPI
}

// NewExerciseService creates a new ExerciseService
func NewExerciseService(backend ExerciseAPI) *ExerciseService {
	return &ExerciseService{api: backend}
}

// List returns the catalog sorted case-insensitively
func (s *ExerciseService) List(ctx context.Context) ([]string, error) {
	names, err := s.api.Exercises(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names, nil
}

// Add adds an exercise to the catalog
func (s *ExerciseService) Add(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyExercise
	}
	return s.api.AddExercise(ctx, name)
}

// Delete removes an exercise from the catalog
func (s *ExerciseService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyExercise
	}
	return s.api.DeleteExercise(ctx, name)
}

// Match returns the catalog names containing query, case-insensitively.
// An exact match is returned alone.
func Match(names []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return names
	}
	var matches []string
	for _, n := range names {
		lower := strings.ToLower(n)
		if lower == query {
			return []string{n}
		}
		if strings.Contains(lower, query) {
			matches = append(matches, n)
		}
	}
	return matches
}
