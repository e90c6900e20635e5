package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for every failed API call.
// Status is 0 when the request never got a response (network failure).
type Error struct {
	Status  int
	Message string
	// Body is the decoded JSON error body, or the raw text when it was not JSON
	Body any
	// Err is the underlying transport error, if any
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is an API error with the given HTTP status
func IsStatus(err error, status int) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}
	return false
}

// IsNotFound reports whether err is an API 404
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the API rejected the credentials
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsNetwork reports whether err is a transport failure without a response
func IsNetwork(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == 0
	}
	return false
}

func networkError(err error) *Error {
	return &Error{
		Status:  0,
		Message: fmt.Sprintf("Network error: %s", err),
		Err:     err,
	}
}

// httpError builds the error for a non-2xx response. The message is taken
// from the "error" field of a JSON body when present.
func httpError(status int, body []byte) *Error {
	apiErr := &Error{
		Status:  status,
		Message: fmt.Sprintf("HTTP %d", status),
	}
	if len(body) == 0 {
		return apiErr
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		apiErr.Body = string(body)
		return apiErr
	}
	apiErr.Body = decoded

	if obj, ok := decoded.(map[string]any); ok {
		if msg, ok := obj["error"].(string); ok && msg != "" {
			apiErr.Message = msg
		}
	}
	return apiErr
}
