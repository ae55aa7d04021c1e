package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lyftlogg/coach-backend/internal/clients/openai"
	pkgerrors "github.com/lyftlogg/coach-backend/internal/pkg/errors"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/types"
)

// CoachService turns a relay payload into a coaching reply via the
// completion provider.
type CoachService interface {
	Reply(ctx context.Context, req *types.RelayRequest) (string, error)
}

type coachService struct {
	log *logger.Logger
	llm openai.Client
}

func NewCoachService(log *logger.Logger, llm openai.Client) CoachService {
	return &coachService{
		log: log.With("service", "CoachService"),
		llm: llm,
	}
}

func (s *coachService) Reply(ctx context.Context, req *types.RelayRequest) (string, error) {
	system := BuildSystemPrompt(req)
	user := BuildUserContent(req)

	text, err := s.llm.GenerateText(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("%w: %v", pkgerrors.ErrUpstream, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", pkgerrors.ErrUpstream)
	}
	return text, nil
}
