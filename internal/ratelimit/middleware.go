package ratelimit

import (
	"fmt"

	"leads-server/internal/apierrors"
	"leads-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per scope to limit per minute. Authenticated callers are
// keyed by user id, anonymous ones by client IP. Limiter failures let the request through.
func (s *Service) Middleware(scope string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity := observability.GetRealClientIP(c)
		if userID, ok := c.Get("User-ID"); ok {
			if id, ok := userID.(string); ok && id != "" {
				identity = "user:" + id
			}
		}
		key := fmt.Sprintf("rl:%s:%s", scope, identity)

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "rate_limit_scope", Value: scope},
			observability.Field{Key: "rate_limit_rpm", Value: limit},
		)

		result, err := s.CheckRateLimit(ctx, key, limit)
		if err != nil {
			s.logger.InfoWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}
