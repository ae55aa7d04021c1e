package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/lyftlogg/coach-backend/internal/pkg/errors"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/types"
)

type stubLLM struct {
	text   string
	err    error
	system string
	user   string
}

func (s *stubLLM) GenerateText(_ context.Context, system, user string) (string, error) {
	s.system = system
	s.user = user
	return s.text, s.err
}

func TestCoachServiceReply(t *testing.T) {
	llm := &stubLLM{text: "  Kör bänkpress.  "}
	svc := NewCoachService(logger.NewNop(), llm)

	got, err := svc.Reply(context.Background(), &types.RelayRequest{Message: "nästa?", Lang: "sv"})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if got != "Kör bänkpress." {
		t.Fatalf("reply not trimmed: %q", got)
	}
	if llm.system == "" || llm.user == "" {
		t.Fatal("prompts must be built and forwarded")
	}
}

func TestCoachServiceReplyUpstreamError(t *testing.T) {
	svc := NewCoachService(logger.NewNop(), &stubLLM{err: fmt.Errorf("provider down")})

	_, err := svc.Reply(context.Background(), &types.RelayRequest{Message: "nästa?"})
	if !errors.Is(err, pkgerrors.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestCoachServiceReplyEmptyCompletion(t *testing.T) {
	svc := NewCoachService(logger.NewNop(), &stubLLM{text: "   "})

	_, err := svc.Reply(context.Background(), &types.RelayRequest{Message: "nästa?"})
	if !errors.Is(err, pkgerrors.ErrUpstream) {
		t.Fatalf("want ErrUpstream on empty completion, got %v", err)
	}
}
