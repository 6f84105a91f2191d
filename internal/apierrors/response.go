package apierrors

import (
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// RespondWithError handles error logging and sends a sanitized JSON response to the client.
// This is the primary function handlers should use for error responses.
//
// Example usage:
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	respond(c, apiErr)
}

// RespondWithValidationError handles Gin binding/validation errors.
// This should be used when c.ShouldBindJSON or similar binding functions fail.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	logger.Error(c.Request.Context(), "Request validation failed", err)
	respond(c, ValidationError(err))
}

// respond logs the API error response for correlation with processor logs and writes the body
func respond(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= 500 && apiErr.Err != nil {
		logger.Error(ctx, "API error response", apiErr.Err)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}
