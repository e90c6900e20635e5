package api

import (
	"context"
	"net/http"

	"github.com/gainsiq/gainsiq/internal/workout"
)

// Injuries returns every injury entry
func (c *Client) Injuries(ctx context.Context) ([]workout.Injury, error) {
	return c.getInjuries(ctx, "/injury")
}

// ActiveInjuries returns the injuries still marked active
func (c *Client) ActiveInjuries(ctx context.Context) ([]workout.Injury, error) {
	return c.getInjuries(ctx, "/injury/active")
}

// LogInjury records a new injury
func (c *Client) LogInjury(ctx context.Context, req InjuryRequest) error {
	return c.do(ctx, http.MethodPost, "/injury", req, nil)
}

// SetInjuryActive flips the active flag of the injury logged at timestamp
func (c *Client) SetInjuryActive(ctx context.Context, timestamp int64, active bool) error {
	return c.do(ctx, http.MethodPut, "/injury/active", injuryActiveRequest{Timestamp: timestamp, Active: active}, nil)
}

func (c *Client) getInjuries(ctx context.Context, endpoint string) ([]workout.Injury, error) {
	var injuries []workout.Injury
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &injuries); err != nil {
		return nil, err
	}
	if injuries == nil {
		injuries = []workout.Injury{}
	}
	return injuries, nil
}
