package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lyftlogg/coach-backend/internal/http/response"
	pkgerrors "github.com/lyftlogg/coach-backend/internal/pkg/errors"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/services"
	"github.com/lyftlogg/coach-backend/internal/types"
)

type ChatHandler struct {
	log   *logger.Logger
	coach services.CoachService
}

func NewChatHandler(log *logger.Logger, coach services.CoachService) *ChatHandler {
	return &ChatHandler{log: log.With("handler", "chat"), coach: coach}
}

// POST /api/coach/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.RelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad request", err)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		response.RespondError(c, http.StatusBadRequest, "bad request", fmt.Errorf("%w: message is required", pkgerrors.ErrInvalidArgument))
		return
	}

	reply, err := h.coach.Reply(c.Request.Context(), &req)
	if err != nil {
		h.log.Warn("Coach reply failed", "error", err.Error())
		response.RespondError(c, http.StatusInternalServerError, "upstream failure", err)
		return
	}
	response.RespondOK(c, types.RelayResponse{Reply: reply})
}
