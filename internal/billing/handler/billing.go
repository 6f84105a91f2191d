package handler

import (
	"io"
	"net/http"

	"leads-server/internal/apierrors"
	"leads-server/internal/billing/processor"
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Stripe caps webhook payloads well below this
const maxWebhookBodyBytes = 65536

type Handler struct {
	processor processor.BillingProcessor
	logger    *observability.Logger
}

func New(processor processor.BillingProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleWebhook handles POST /api/billing/webhook
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Error(ctx, "failed to read request body", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid request body"))
		return
	}

	event, err := h.processor.VerifyEvent(ctx, payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		h.logger.Error(ctx, "failed to handle webhook", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
