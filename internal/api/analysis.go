package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Analysis returns the latest generated analysis document as raw JSON.
// It is nil when no analysis exists yet.
func (c *Client) Analysis(ctx context.Context) (json.RawMessage, error) {
	var doc json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/analysis", nil, &doc); err != nil {
		return nil, err
	}
	if string(doc) == "null" {
		return nil, nil
	}
	return doc, nil
}

// GenerateAnalysis asks the backend to produce a new analysis
func (c *Client) GenerateAnalysis(ctx context.Context) (string, error) {
	return c.doMessage(ctx, http.MethodPost, "/analysis", nil)
}
