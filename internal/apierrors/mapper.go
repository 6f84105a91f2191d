package apierrors

import (
	"errors"
	"strings"

	billingProcessor "leads-server/internal/billing/processor"
	composeProcessor "leads-server/internal/compose/processor"
	campaignProcessor "leads-server/internal/emailcampaigns/processor"
	leadsProcessor "leads-server/internal/leads/processor"
	referralProcessor "leads-server/internal/referral/processor"
	"leads-server/internal/spreadsheet"
	"leads-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// Unknown errors become a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Lead ingestion and CRUD
	case errors.Is(err, spreadsheet.ErrParse):
		return BadRequest(CodeInvalidFile, "Unable to read the uploaded spreadsheet")

	case errors.Is(err, leadsProcessor.ErrLeadNotFound):
		return NotFound(CodeLeadNotFound, "Lead not found")

	case errors.Is(err, leadsProcessor.ErrLeadIDConflict):
		return Conflict(CodeLeadIDExists, "A lead with this id already exists")

	case errors.Is(err, leadsProcessor.ErrInvalidEmail):
		return BadRequest(CodeInvalidInput, "Invalid email format")

	case errors.Is(err, leadsProcessor.ErrMissingRequired):
		return BadRequest(CodeInvalidInput, "Lead id, name and email are required")

	// Referrals
	case errors.Is(err, referralProcessor.ErrReferralCodeEmpty):
		return BadRequest(CodeReferralCodeRequired, "Referral code is required")

	case errors.Is(err, referralProcessor.ErrInvalidReferral):
		return NotFound(CodeInvalidReferral, "Invalid or expired referral code")

	case errors.Is(err, referralProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, referralProcessor.ErrReferralNotFound):
		return NotFound(CodeNotFound, "Referral not found")

	// Compose
	case errors.Is(err, composeProcessor.ErrChannelRequired):
		return BadRequest(CodeInvalidInput, "Channel is required")

	case errors.Is(err, composeProcessor.ErrAIRequestFailed):
		return ServiceUnavailable(CodeAIServiceError, "AI request failed", err)

	// Email campaigns
	case errors.Is(err, campaignProcessor.ErrInvalidEmailType):
		return BadRequest(CodeInvalidEmailType, "Email type must be one of: bulk, category, city, country, selected")

	case errors.Is(err, campaignProcessor.ErrFilterRequired):
		return BadRequest(CodeFilterRequired, "A filter value is required for this email type")

	case errors.Is(err, campaignProcessor.ErrNoRecipients):
		return BadRequest(CodeNoRecipients, "No leads match the selected recipients")

	case errors.Is(err, campaignProcessor.ErrQueueUnavailable):
		return ServiceUnavailable(CodeQueueError, "Email queue is temporarily unavailable. Please try again later.", err)

	// Billing webhook
	case errors.Is(err, billingProcessor.ErrInvalidSignature):
		return BadRequest(CodeInvalidSignature, "Invalid webhook signature")

	case errors.Is(err, billingProcessor.ErrMalformedEvent):
		return BadRequest(CodeInvalidInput, "Malformed webhook event")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies provider failures by message content.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
