package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/workout"
)

// Common errors for the injury and bodypart services
var (
	ErrEmptyLocation    = errors.New("location cannot be empty")
	ErrInvalidTimestamp = errors.New("invalid injury timestamp")
	ErrInjuryNotFound   = errors.New("injury not found")
)

// InjuryService manages the injury log
type InjuryService struct {
	api InjuryAPI
	now func() time.Time
}

// NewInjuryService creates a new InjuryService
func NewInjuryService(backend InjuryAPI, now func() time.Time) *InjuryService {
	return &InjuryService{api: backend, now: now}
}

// List returns injuries newest first, only the active ones when activeOnly
func (s *InjuryService) List(ctx context.Context, activeOnly bool) ([]workout.Injury, error) {
	var injuries []workout.Injury
	var err error
	if activeOnly {
		injuries, err = s.api.ActiveInjuries(ctx)
	} else {
		injuries, err = s.api.Injuries(ctx)
	}
	if err != nil {
		return nil, err
	}
	sort.SliceStable(injuries, func(i, j int) bool {
		return injuries[i].Timestamp > injuries[j].Timestamp
	})
	return injuries, nil
}

// Log records a new active injury at location
func (s *InjuryService) Log(ctx context.Context, location, details string) (workout.Injury, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return workout.Injury{}, ErrEmptyLocation
	}

	active := true
	injury := workout.Injury{
		Timestamp: s.now().Unix(),
		Location:  location,
		Active:    active,
		Details:   strings.TrimSpace(details),
	}

	err := s.api.LogInjury(ctx, api.InjuryRequest{
		Timestamp: injury.Timestamp,
		Location:  injury.Location,
		Details:   injury.Details,
		Active:    &active,
	})
	if err != nil {
		return workout.Injury{}, err
	}
	return injury, nil
}

// SetActive marks the injury logged at timestamp as active or healed
func (s *InjuryService) SetActive(ctx context.Context, timestamp int64, active bool) error {
	if timestamp <= 0 {
		return ErrInvalidTimestamp
	}
	return s.api.SetInjuryActive(ctx, timestamp, active)
}

// BodypartService manages the bodypart catalog used for injury locations
type BodypartService struct {
	api BodypartAPI
}

// NewBodypartService creates a new BodypartService
func NewBodypartService(backend BodypartAPI) *BodypartService {
	return &BodypartService{api: backend}
}

// List returns the catalog sorted alphabetically
func (s *BodypartService) List(ctx context.Context) ([]string, error) {
	parts, err := s.api.Bodyparts(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(parts)
	return parts, nil
}

// Add adds a bodypart
func (s *BodypartService) Add(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	return s.api.AddBodypart(ctx, location)
}

// Delete removes a bodypart
func (s *BodypartService) Delete(ctx context.Context, location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrEmptyLocation
	}
	return s.api.DeleteBodypart(ctx, location)
}
