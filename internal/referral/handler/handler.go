package handler

import (
	"errors"
	"net/http"

	"leads-server/internal/apierrors"
	"leads-server/internal/observability"
	"leads-server/internal/referral/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type invalidReferralResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// HandleValidateReferralCode handles GET /api/referrals/validate/:code
func (h *Handler) HandleValidateReferralCode(c *gin.Context) {
	ctx := c.Request.Context()

	response, err := h.processor.ValidateReferralCode(ctx, c.Param("code"))
	if err != nil {
		if errors.Is(err, processor.ErrInvalidReferral) {
			c.JSON(http.StatusNotFound, invalidReferralResponse{
				Valid: false,
				Error: "Invalid or expired referral code",
			})
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleGetMyReferrals handles GET /api/referrals/my-referrals
func (h *Handler) HandleGetMyReferrals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.processor.GetMyReferrals(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// HandleGetReferralStats handles GET /api/referrals/stats
func (h *Handler) HandleGetReferralStats(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	response, err := h.processor.GetReferralStats(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return uuid.Nil, false
	}

	idStr, _ := raw.(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Invalid user identity"))
		return uuid.Nil, false
	}
	return userID, true
}
