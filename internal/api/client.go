// Package api is the HTTP client of the GainsIQ REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout bounds a single request when no http.Client is supplied
	DefaultTimeout = 30 * time.Second

	defaultCacheSize = 4 * 1024 * 1024
)

// Options configures a Client
type Options struct {
	BaseURL string
	APIKey  string

	// HTTPClient is used as is when set; Timeout is ignored in that case
	HTTPClient *http.Client
	Timeout    time.Duration

	// CacheTTL enables caching of GET responses. Zero disables the cache.
	// Any mutating request clears the cache.
	CacheTTL time.Duration
}

// Client talks to the GainsIQ API. Requests are one-shot: there is no retry.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	cache    *freecache.Cache
	cacheTTL time.Duration
}

// NewClient creates a new API client
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: httpClient,
	}

	if opts.CacheTTL > 0 {
		c.cache = freecache.NewCache(defaultCacheSize)
		c.cacheTTL = opts.CacheTTL
	}

	return c
}

// BaseURL returns the API base URL without trailing slash
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ClearCache drops all cached GET responses
func (c *Client) ClearCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// do performs a request and decodes a JSON response into out (if non-nil).
// An empty response body leaves out untouched.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	respBytes, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(respBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// doMessage performs a request whose response is {"message": "..."}.
// A plain-text body is returned as is.
func (c *Client) doMessage(ctx context.Context, method, endpoint string, body any) (string, error) {
	respBytes, err := c.send(ctx, method, endpoint, body)
	if err != nil {
		return "", err
	}

	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBytes, &msg); err == nil && msg.Message != "" {
		return msg.Message, nil
	}
	var text string
	if err := json.Unmarshal(respBytes, &text); err == nil {
		return text, nil
	}
	return strings.TrimSpace(string(respBytes)), nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	cacheable := method == http.MethodGet && c.cache != nil
	if cacheable {
		if cached, err := c.cache.Get([]byte(endpoint)); err == nil {
			log.Tracef("api: %s %s served from cache", method, endpoint)
			return cached, nil
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, endpoint, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Mutations invalidate the cache even when they fail.
	if method != http.MethodGet {
		defer c.ClearCache()
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"method":     method,
			"endpoint":   endpoint,
			"request_id": requestID,
		}).Debugf("api: request failed: %s", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(fmt.Errorf("read response body: %w", err))
	}

	log.WithFields(log.Fields{
		"method":      method,
		"endpoint":    endpoint,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
		"request_id":  requestID,
	}).Debug("api: request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpError(resp.StatusCode, respBytes)
	}

	if cacheable {
		ttl := int(c.cacheTTL.Seconds())
		if ttl < 1 {
			ttl = 1
		}
		if err := c.cache.Set([]byte(endpoint), respBytes, ttl); err != nil {
			log.Errorf("api: failed to cache %s: %s", endpoint, err)
		}
	}

	return respBytes, nil
}
