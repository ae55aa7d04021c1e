package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type statusErr int

func (e statusErr) Error() string       { return fmt.Sprintf("http %d", int(e)) }
func (e statusErr) HTTPStatusCode() int { return int(e) }

func TestIsRetryableHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 425, 429, 500, 502, 503, 504} {
		if !IsRetryableHTTPStatus(code) {
			t.Fatalf("status %d: want retryable", code)
		}
	}
	for _, code := range []int{200, 201, 400, 401, 403, 404, 422, 501} {
		if IsRetryableHTTPStatus(code) {
			t.Fatalf("status %d: want not retryable", code)
		}
	}
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"wrapped canceled", fmt.Errorf("call: %w", context.Canceled), false},
		{"status 503", statusErr(503), true},
		{"status 400", statusErr(400), false},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := IsRetryableError(tc.err); got != tc.want {
			t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
	}
}

func TestRetryAfterDuration(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}

	if got := RetryAfterDuration(nil, time.Second, 5*time.Second); got != time.Second {
		t.Fatalf("nil response: want fallback, got %s", got)
	}

	resp.Header.Set("Retry-After", "3")
	if got := RetryAfterDuration(resp, time.Second, 5*time.Second); got != 3*time.Second {
		t.Fatalf("header honored: want=3s got=%s", got)
	}

	resp.Header.Set("Retry-After", "30")
	if got := RetryAfterDuration(resp, time.Second, 5*time.Second); got != 5*time.Second {
		t.Fatalf("clamped: want=5s got=%s", got)
	}

	resp.Header.Set("Retry-After", "garbage")
	if got := RetryAfterDuration(resp, time.Second, 5*time.Second); got != time.Second {
		t.Fatalf("unparseable header: want fallback, got %s", got)
	}
}

func TestJitterSleep(t *testing.T) {
	if got := JitterSleep(0); got != 0 {
		t.Fatalf("zero base: want=0 got=%s", got)
	}
	base := time.Second
	for i := 0; i < 50; i++ {
		got := JitterSleep(base)
		if got < 800*time.Millisecond || got > 1200*time.Millisecond {
			t.Fatalf("jitter out of bounds: %s", got)
		}
	}
}
