package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"leads-server/internal/apierrors"
	"leads-server/internal/leads/processor"
	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	processor      processor.LeadProcessor
	maxUploadBytes int64
	logger         *observability.Logger
}

func New(processor processor.LeadProcessor, maxUploadBytes int64, logger *observability.Logger) Handler {
	return Handler{processor: processor, maxUploadBytes: maxUploadBytes, logger: logger}
}

// HandleUploadLeads handles POST /api/admin/leads/upload
func (h *Handler) HandleUploadLeads(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Request.ContentLength > h.maxUploadBytes {
		apierrors.RespondWithError(c, apierrors.RequestEntityTooLarge(fileTooLargeMessage(h.maxUploadBytes)))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			apierrors.RespondWithError(c, apierrors.RequestEntityTooLarge(fileTooLargeMessage(h.maxUploadBytes)))
			return
		}
		h.logger.InfoWithError(ctx, "upload without a file", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeFileRequired, "No file uploaded"))
		return
	}

	file, err := header.Open()
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	defer file.Close()

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "file_name", Value: header.Filename},
		observability.Field{Key: "file_size", Value: header.Size},
	)

	summary, err := h.processor.UploadLeads(ctx, file)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleListLeads handles GET /api/admin/leads
func (h *Handler) HandleListLeads(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.processor.ListLeads(c.Request.Context(), page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetLead handles GET /api/admin/get-lead/:id
func (h *Handler) HandleGetLead(c *gin.Context) {
	id, ok := leadIDParam(c)
	if !ok {
		return
	}

	lead, err := h.processor.GetLead(c.Request.Context(), id)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

type UpdateLeadRequest struct {
	LeadID         string     `json:"leadId" binding:"required"`
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	Phone          *string    `json:"phone"`
	Category       *string    `json:"category"`
	City           *string    `json:"city"`
	Country        *string    `json:"country"`
	AddressStreet  *string    `json:"addressStreet"`
	LinkedIn       *string    `json:"linkedin"`
	FacebookLink   *string    `json:"facebookLink"`
	WebsiteLink    *string    `json:"websiteLink"`
	GoogleMapLink  *string    `json:"googleMapLink"`
	Instagram      *string    `json:"instagram"`
	LastVerifiedAt *time.Time `json:"lastVerifiedAt"`
}

// HandleUpdateLead handles PUT /api/admin/update-leads/:id
func (h *Handler) HandleUpdateLead(c *gin.Context) {
	id, ok := leadIDParam(c)
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	lead, err := h.processor.UpdateLead(c.Request.Context(), id, store.LeadFields{
		LeadID:         req.LeadID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Category:       req.Category,
		City:           req.City,
		Country:        req.Country,
		AddressStreet:  req.AddressStreet,
		LinkedIn:       req.LinkedIn,
		FacebookLink:   req.FacebookLink,
		WebsiteLink:    req.WebsiteLink,
		GoogleMapLink:  req.GoogleMapLink,
		Instagram:      req.Instagram,
		LastVerifiedAt: req.LastVerifiedAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleDeleteLead handles DELETE /api/admin/leads/:id
func (h *Handler) HandleDeleteLead(c *gin.Context) {
	id, ok := leadIDParam(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteLead(c.Request.Context(), id); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

// HandleExportLeads handles GET /api/admin/leads/export
func (h *Handler) HandleExportLeads(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.processor.ExportLeads(c.Request.Context(), &buf); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func leadIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidID, "Invalid lead id"))
		return uuid.Nil, false
	}
	return id, true
}

func fileTooLargeMessage(limit int64) string {
	return fmt.Sprintf("File exceeds the %d MB upload limit", limit>>20)
}
