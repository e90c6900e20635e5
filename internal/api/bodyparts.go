package api

import (
	"context"
	"net/http"
)

// Bodyparts returns the bodypart catalog used for injuries
func (c *Client) Bodyparts(ctx context.Context) ([]string, error) {
	var parts []string
	if err := c.do(ctx, http.MethodGet, "/bodyparts", nil, &parts); err != nil {
		return nil, err
	}
	if parts == nil {
		parts = []string{}
	}
	return parts, nil
}

// AddBodypart adds a location to the bodypart catalog
func (c *Client) AddBodypart(ctx context.Context, location string) error {
	return c.do(ctx, http.MethodPost, "/bodyparts", bodypartRequest{Location: location}, nil)
}

// DeleteBodypart removes a location from the bodypart catalog
func (c *Client) DeleteBodypart(ctx context.Context, location string) error {
	return c.do(ctx, http.MethodDelete, "/bodyparts", bodypartRequest{Location: location}, nil)
}
