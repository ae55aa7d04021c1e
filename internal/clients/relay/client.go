package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lyftlogg/coach-backend/internal/coach"
	"github.com/lyftlogg/coach-backend/internal/pkg/httpx"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/types"
)

const (
	// SourceRemote marks a reply produced by the relay-backed model path.
	SourceRemote = "remote"
	// SourceFallback marks a reply produced by the local synthesizer.
	SourceFallback = "fallback"

	defaultTimeout    = 12 * time.Second
	defaultMaxRetries = 1
	maxHistoryTurns   = 12

	styleTone      = "supportive, concrete, no hype"
	styleStructure = "answer first, then numbered steps when giving a plan"
	styleMaxLength = 900
)

// Reply is what GetReply always resolves to; Text is never empty.
type Reply struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Options carries the regenerate-flow directives.
type Options struct {
	StrictMode     bool
	ForceDirect    bool
	PreviousAnswer string
	ReviseReason   string
}

// Client calls the relay service and falls back to the local coach on any
// failure. An empty endpoint disables the network path entirely, so the
// client works with zero configuration.
type Client struct {
	log        *logger.Logger
	endpoint   string
	httpClient *http.Client
	maxRetries int
}

type Config struct {
	Endpoint   string
	Timeout    time.Duration
	MaxRetries int
}

func New(log *logger.Logger, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		log:        log.With("client", "relay"),
		endpoint:   strings.TrimSpace(cfg.Endpoint),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: retries,
	}
}

// NewFromEnv reads COACH_RELAY_URL (absence keeps the client fallback-only)
// and optional timeout/retry overrides.
func NewFromEnv(log *logger.Logger) *Client {
	cfg := Config{
		Endpoint:   os.Getenv("COACH_RELAY_URL"),
		MaxRetries: defaultMaxRetries,
	}
	if v := strings.TrimSpace(os.Getenv("COACH_RELAY_TIMEOUT_SECONDS")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("COACH_RELAY_MAX_RETRIES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return New(log, cfg)
}

// GetReply never fails: every error path resolves to a locally synthesized
// reply with SourceFallback.
func (c *Client) GetReply(
	ctx context.Context,
	lang coach.Lang,
	message string,
	wctx types.CoachContext,
	history []types.ConversationTurn,
	profile types.CoachProfile,
	opts *Options,
) Reply {
	message = strings.Join(strings.Fields(message), " ")
	if message == "" {
		return Reply{Text: coach.EmptyMessageReply(lang), Source: SourceFallback}
	}

	// The summary is computed regardless of network availability: it rides
	// in the outbound payload and it feeds the fallback.
	summary := coach.Aggregate(wctx.Workouts, wctx.WeeklyGoal, wctx.TodayISO)

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	if c.endpoint == "" {
		return c.fallback(lang, message, history, summary)
	}

	req := types.RelayRequest{
		Message:        message,
		Lang:           string(lang),
		Context:        wctx,
		ContextSummary: summary,
		CoachProfile:   profile.Sanitized(),
		History:        history,
		ResponseStyle: types.ResponseStyle{
			Tone:      styleTone,
			Structure: styleStructure,
			MaxLength: styleMaxLength,
		},
	}
	if opts != nil {
		if opts.StrictMode {
			req.ResponseStyle.StrictMode = "strict"
		}
		req.ResponseStyle.ForceDirect = opts.ForceDirect
		req.ResponseStyle.ReviseReason = strings.TrimSpace(opts.ReviseReason)
		req.PreviousAnswer = strings.TrimSpace(opts.PreviousAnswer)
	}

	text, err := c.post(ctx, req)
	if err != nil {
		c.log.Warn("Relay call failed, using local fallback", "error", err.Error())
		return c.fallback(lang, message, history, summary)
	}
	return Reply{Text: text, Source: SourceRemote}
}

func (c *Client) fallback(lang coach.Lang, message string, history []types.ConversationTurn, summary types.MetricsSummary) Reply {
	intent := coach.ClassifyIntent(message, history)
	return Reply{Text: coach.Synthesize(lang, intent, summary, message), Source: SourceFallback}
}

type relayHTTPError struct {
	StatusCode int
	Body       string
}

func (e *relayHTTPError) Error() string {
	return fmt.Sprintf("relay http %d: %s", e.StatusCode, e.Body)
}

func (e *relayHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *Client) postOnce(ctx context.Context, body types.RelayRequest) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &relayHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

// post issues the relay call with the bounded retry policy: one extra attempt
// by default, only for retryable statuses and transport errors. An external
// cancellation aborts the in-flight attempt and is never retried.
func (c *Client) post(ctx context.Context, body types.RelayRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.httpClient.Timeout)
	defer cancel()

	backoff := 500 * time.Millisecond

	for attempt := 0; ; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		resp, raw, err := c.postOnce(ctx, body)
		if err == nil {
			var parsed types.RelayResponse
			if uErr := json.Unmarshal(raw, &parsed); uErr != nil {
				return "", fmt.Errorf("relay decode error: %w", uErr)
			}
			reply := strings.TrimSpace(parsed.Reply)
			if reply == "" {
				return "", fmt.Errorf("relay returned an empty reply")
			}
			return reply, nil
		}

		if attempt >= c.maxRetries || !httpx.IsRetryableError(err) {
			return "", err
		}

		sleepFor := httpx.JitterSleep(httpx.RetryAfterDuration(resp, backoff, 5*time.Second))
		c.log.Debug("Relay request retrying",
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(sleepFor):
		}
		backoff *= 2
	}
}
