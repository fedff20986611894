// Package gemini is a minimal REST client for the Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Gemini REST API base URL.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the chat model used when none is configured.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTimeout bounds a single generateContent call.
	DefaultTimeout = 30 * time.Second

	// RateLimit caps generateContent calls per second. The free tier allows
	// 15 requests per minute; 0.25/s stays comfortably inside it.
	RateLimit = 0.25

	// maxErrorBodyLen limits how much of an error body ends up in messages.
	maxErrorBodyLen = 300
)

// Client is a rate-limited HTTP client for the Gemini generateContent API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	model      string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the API key, overriding the environment.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithModel sets the chat model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// NewClient creates a Gemini client. The API key is read from GEMINI_API_KEY
// unless provided via WithAPIKey; a missing key returns ErrMissingAPIKey so
// callers fail at startup rather than on the first request.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		model:      DefaultModel,
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.apiKey = key
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return c, nil
}

// Model returns the configured chat model name.
func (c *Client) Model() string {
	return c.model
}

// Ask sends a single prompt to the generateContent endpoint and returns the
// first candidate's first text part along with the raw response body.
func (c *Client) Ask(ctx context.Context, prompt string) (string, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", nil, fmt.Errorf("rate limiter: %w", err)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		return "", nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("reading response: %w", err)
	}

	if err := checkHTTPErrors(resp.StatusCode, raw); err != nil {
		return "", nil, err
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}

	text, ok := decoded.firstText()
	if !ok {
		return "", nil, fmt.Errorf("%w: missing candidates[0].content.parts[0].text", ErrUnexpectedResponse)
	}

	return text, raw, nil
}

// checkHTTPErrors maps a non-success status to a typed error.
func checkHTTPErrors(status int, body []byte) error {
	switch {
	case status == 401 || status == 403:
		return fmt.Errorf("%w: status %d", ErrAuth, status)
	case status == 429:
		return fmt.Errorf("%w: status %d", ErrRateLimited, status)
	case status >= 400:
		return &APIError{
			StatusCode: status,
			Message:    truncateBody(body),
		}
	}
	return nil
}

// truncateBody trims an error body to a displayable length.
func truncateBody(body []byte) string {
	s := string(bytes.TrimSpace(body))
	if len(s) > maxErrorBodyLen {
		return s[:maxErrorBodyLen] + "..."
	}
	return s
}
