package handler

import (
	"strings"

	"leads-server/internal/apierrors"
	"leads-server/internal/auth/processor"
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware authenticates the bearer token and stores the caller in the context
// under "User-ID" and "User-Role".
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	c.Set("User-ID", claims.Subject)
	c.Set("User-Role", claims.Role)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject},
	))
	c.Next()
}

// HandleAdminMiddleware only lets callers with the admin role through. It runs after HandleJWTMiddleware.
func (h *Handler) HandleAdminMiddleware(c *gin.Context) {
	if c.GetString("User-Role") != processor.RoleAdmin {
		apierrors.RespondWithError(c, apierrors.Forbidden("Admin access required"))
		return
	}
	c.Next()
}
