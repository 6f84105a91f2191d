package handler

import (
	"errors"
	"net/http"

	"leads-server/internal/apierrors"
	"leads-server/internal/compose/processor"
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ComposeProcessor
	logger    *observability.Logger
}

func New(processor processor.ComposeProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type ComposeRequest struct {
	Channel  string         `json:"channel" binding:"required"`
	Industry string         `json:"industry"`
	Tone     string         `json:"tone"`
	Goal     string         `json:"goal"`
	Details  map[string]any `json:"details"`
	Language string         `json:"language"`
}

type ComposeResponse struct {
	OK    bool   `json:"ok"`
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}

// HandleCompose handles POST /api/compose
func (h *Handler) HandleCompose(c *gin.Context) {
	ctx := c.Request.Context()

	var req ComposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var userID *uuid.UUID
	if raw, ok := c.Get("User-ID"); ok {
		if id, err := uuid.Parse(raw.(string)); err == nil {
			userID = &id
		}
	}

	text, err := h.processor.Compose(ctx, userID, processor.ComposeRequest{
		Channel:  req.Channel,
		Industry: req.Industry,
		Tone:     req.Tone,
		Goal:     req.Goal,
		Details:  req.Details,
		Language: req.Language,
	})
	if err != nil {
		if errors.Is(err, processor.ErrAIRequestFailed) {
			c.JSON(http.StatusServiceUnavailable, ComposeResponse{OK: false, Error: "AI request failed"})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ComposeResponse{OK: true, Text: text})
}
