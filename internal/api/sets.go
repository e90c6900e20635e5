package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gainsiq/gainsiq/internal/workout"
)

// LogSet records a single set
func (c *Client) LogSet(ctx context.Context, req LogSetRequest) error {
	return c.do(ctx, http.MethodPost, "/sets/log", req, nil)
}

// BatchLogSets records several sets in one request
func (c *Client) BatchLogSets(ctx context.Context, reqs []LogSetRequest) error {
	return c.do(ctx, http.MethodPost, "/sets/batch", batchLogSetsRequest{Sets: reqs}, nil)
}

// LastMonthSets returns the sets logged during the last month
func (c *Client) LastMonthSets(ctx context.Context) ([]workout.WorkoutSet, error) {
	return c.getSets(ctx, "/sets/last_month")
}

// Sets returns the sets with start <= timestamp <= end (unix seconds)
func (c *Client) Sets(ctx context.Context, start, end int64) ([]workout.WorkoutSet, error) {
	q := url.Values{}
	q.Set("start", strconv.FormatInt(start, 10))
	q.Set("end", strconv.FormatInt(end, 10))
	return c.getSets(ctx, "/sets?"+q.Encode())
}

// SetsByExercise returns the sets of one exercise in a time range
func (c *Client) SetsByExercise(ctx context.Context, exercise string, start, end int64) ([]workout.WorkoutSet, error) {
	q := url.Values{}
	q.Set("exerciseName", exercise)
	q.Set("start", strconv.FormatInt(start, 10))
	q.Set("end", strconv.FormatInt(end, 10))
	return c.getSets(ctx, "/sets/by_exercise?"+q.Encode())
}

// EditSet updates the set identified by WorkoutID and Timestamp
func (c *Client) EditSet(ctx context.Context, req EditSetRequest) error {
	return c.do(ctx, http.MethodPut, "/sets/edit", req, nil)
}

// DeleteSet removes one set
func (c *Client) DeleteSet(ctx context.Context, key workout.SetKey) error {
	return c.do(ctx, http.MethodDelete, "/sets", newDeleteSetRequest(key), nil)
}

// PopLastSet removes the most recently logged set and returns the server message
func (c *Client) PopLastSet(ctx context.Context) (string, error) {
	return c.doMessage(ctx, http.MethodPost, "/sets/pop", nil)
}

func (c *Client) getSets(ctx context.Context, endpoint string) ([]workout.WorkoutSet, error) {
	var sets []workout.WorkoutSet
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &sets); err != nil {
		return nil, err
	}
	if sets == nil {
		sets = []workout.WorkoutSet{}
	}
	return sets, nil
}
