package api

import (
	"context"
	"net/http"
)

// Exercises returns the exercise catalog
func (c *Client) Exercises(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, "/exercises", nil, &names); err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// AddExercise adds a name to the exercise catalog
func (c *Client) AddExercise(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/exercises", exerciseRequest{ExerciseName: name}, nil)
}

// DeleteExercise removes a name from the exercise catalog
func (c *Client) DeleteExercise(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/exercises", exerciseRequest{ExerciseName: name}, nil)
}
