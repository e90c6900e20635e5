package api

import (
	"context"
	"net/http"

	"github.com/gainsiq/gainsiq/internal/workout"
)

// LogWeight records a bodyweight sample in pounds
func (c *Client) LogWeight(ctx context.Context, pounds float64) error {
	return c.do(ctx, http.MethodPost, "/weight", weightRequest{Weight: pounds}, nil)
}

// Weights returns every bodyweight sample
func (c *Client) Weights(ctx context.Context) ([]workout.WeightEntry, error) {
	var entries []workout.WeightEntry
	if err := c.do(ctx, http.MethodGet, "/weight", nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []workout.WeightEntry{}
	}
	return entries, nil
}

// DeleteRecentWeight removes the most recent bodyweight sample
func (c *Client) DeleteRecentWeight(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/weight", nil, nil)
}

// WeightTrend returns the backend's linear fit of the bodyweight series
func (c *Client) WeightTrend(ctx context.Context) (workout.WeightTrend, error) {
	var trend workout.WeightTrend
	err := c.do(ctx, http.MethodGet, "/weight/trend", nil, &trend)
	return trend, err
}
