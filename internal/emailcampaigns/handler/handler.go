package handler

import (
	"net/http"
	"strconv"

	"leads-server/internal/apierrors"
	"leads-server/internal/emailcampaigns/processor"
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type SendCampaignRequest struct {
	Subject        string                   `json:"subject" binding:"required,max=998"`
	Message        string                   `json:"message" binding:"required"`
	EmailType      string                   `json:"emailType" binding:"required"`
	FilterCriteria processor.FilterCriteria `json:"filterCriteria"`
	LeadIDs        []string                 `json:"leadIds"`
}

// HandleSendCampaign handles POST /api/admin/leads/email
func (h *Handler) HandleSendCampaign(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req SendCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	leadIDs := make([]uuid.UUID, 0, len(req.LeadIDs))
	for _, raw := range req.LeadIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidID, "Invalid lead id: "+raw))
			return
		}
		leadIDs = append(leadIDs, id)
	}

	resp, err := h.processor.SendCampaign(c.Request.Context(), userID, processor.SendCampaignRequest{
		Subject:        req.Subject,
		Message:        req.Message,
		EmailType:      req.EmailType,
		FilterCriteria: req.FilterCriteria,
		LeadIDs:        leadIDs,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// HandleListFeedback handles GET /api/admin/email-feedback
func (h *Handler) HandleListFeedback(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.processor.ListFeedback(c.Request.Context(), userID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
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
