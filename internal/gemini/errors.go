package gemini

import (
	"errors"
	"fmt"
)

// Common errors returned by the Gemini client.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

	// ErrNetwork indicates a network connectivity issue.
	ErrNetwork = errors.New("network error communicating with Gemini")

	// ErrAuth indicates an authentication error (missing/invalid API key).
	ErrAuth = errors.New("Gemini authentication error")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("Gemini rate limit exceeded")

	// ErrUnexpectedResponse indicates a success response whose shape does not
	// contain the expected candidates path.
	ErrUnexpectedResponse = errors.New("unexpected response shape from Gemini")
)

// APIError represents an HTTP-level error from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Gemini API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("Gemini API error (status %d)", e.StatusCode)
}

// IsAuthError returns true if the error indicates an authentication problem.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrAuth) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
