package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewClient()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewClient_KeyFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	c, err := NewClient()
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if c.apiKey != "env-key" {
		t.Errorf("apiKey = %q, want %q", c.apiKey, "env-key")
	}
}

func TestClient_Ask(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []candidate{{
				Content: content{Parts: []part{{Text: "Hello there."}}},
			}},
		})
	})

	answer, raw, err := c.Ask(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	if answer != "Hello there." {
		t.Errorf("answer = %q, want %q", answer, "Hello there.")
	}
	if len(raw) == 0 {
		t.Error("raw response should not be empty")
	}
	if gotPath != "/models/"+DefaultModel+":generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("key query param = %q, want %q", gotKey, "test-key")
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if gotBody.Contents[0].Parts[0].Text != "hi" {
		t.Errorf("prompt sent = %q, want %q", gotBody.Contents[0].Parts[0].Text, "hi")
	}
}

func TestClient_Ask_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal failure", http.StatusInternalServerError)
	})

	_, _, err := c.Ask(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "internal failure") {
		t.Errorf("Message = %q, should include body", apiErr.Message)
	}
}

func TestClient_Ask_AuthError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid key", http.StatusForbidden)
	})

	_, _, err := c.Ask(context.Background(), "hi")
	if !IsAuthError(err) {
		t.Errorf("err = %v, want auth error", err)
	}
}

func TestClient_Ask_RateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	_, _, err := c.Ask(context.Background(), "hi")
	if !IsRateLimited(err) {
		t.Errorf("err = %v, want rate limit error", err)
	}
}

func TestClient_Ask_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no candidates",
			body: `{"candidates":[]}`,
		},
		{
			name: "candidate without parts",
			body: `{"candidates":[{"content":{"parts":[]}}]}`,
		},
		{
			name: "not json",
			body: `<html>oops</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, _, err := c.Ask(context.Background(), "hi")
			if !errors.Is(err, ErrUnexpectedResponse) {
				t.Errorf("err = %v, want ErrUnexpectedResponse", err)
			}
		})
	}
}

func TestClient_Ask_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call

	c, err := NewClient(WithAPIKey("test-key"), WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, _, err = c.Ask(context.Background(), "hi")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("err = %v, want ErrNetwork", err)
	}
}

func TestTruncateBody(t *testing.T) {
	long := strings.Repeat("x", maxErrorBodyLen+50)
	got := truncateBody([]byte(long))
	if len(got) != maxErrorBodyLen+3 {
		t.Errorf("len = %d, want %d", len(got), maxErrorBodyLen+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated body should end with ...")
	}

	if got := truncateBody([]byte("  short  ")); got != "short" {
		t.Errorf("got %q, want %q", got, "short")
	}
}
