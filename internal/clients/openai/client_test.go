package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

func newEnvClient(t *testing.T, baseURL string) Client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", baseURL)
	t.Setenv("OPENAI_MODEL", "test-model")
	t.Setenv("OPENAI_MAX_RETRIES", "1")

	c, err := NewClient(logger.NewNop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewClient(logger.NewNop()); err == nil {
		t.Fatal("want error without OPENAI_API_KEY")
	}
}

func TestExtractOutputText(t *testing.T) {
	var resp responsesResponse
	payload := `{
		"output": [
			{"type": "reasoning", "content": [{"type": "output_text", "text": "scratch"}]},
			{"type": "message", "role": "assistant", "content": [
				{"type": "output_text", "text": "Hello "},
				{"type": "output_text", "text": "there."}
			]}
		]
	}`
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := extractOutputText(resp); got != "Hello there." {
		t.Fatalf("extractOutputText: want=%q got=%q", "Hello there.", got)
	}

	resp.OutputText = "top-level wins"
	if got := extractOutputText(resp); got != "top-level wins" {
		t.Fatalf("top-level output_text: want=%q got=%q", "top-level wins", got)
	}
}

func TestGenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/responses" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header: got %q", got)
		}
		var req responsesRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "test-model" || len(req.Input) != 2 {
			t.Errorf("request payload: %+v", req)
		}
		w.Write([]byte(`{"output_text": "Kör bänkpress."}`))
	}))
	defer srv.Close()

	c := newEnvClient(t, srv.URL)
	got, err := c.GenerateText(context.Background(), "system prompt", "user content")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "Kör bänkpress." {
		t.Fatalf("text: want=%q got=%q", "Kör bänkpress.", got)
	}
}

func TestGenerateTextRetriesOnRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"output_text": "eventually"}`))
	}))
	defer srv.Close()

	c := newEnvClient(t, srv.URL)
	got, err := c.GenerateText(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "eventually" || calls.Load() != 2 {
		t.Fatalf("retry: text=%q attempts=%d", got, calls.Load())
	}
}

func TestGenerateTextRefusal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"refusal": "cannot help with that"}`))
	}))
	defer srv.Close()

	c := newEnvClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("want error on refusal")
	}
}

func TestGenerateTextEmptyOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output": []}`))
	}))
	defer srv.Close()

	c := newEnvClient(t, srv.URL)
	if _, err := c.GenerateText(context.Background(), "s", "u"); err == nil {
		t.Fatal("want error when no output text is present")
	}
}
