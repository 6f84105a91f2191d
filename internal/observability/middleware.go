package observability

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetRealClientIP extracts the client IP from the CloudFront-Viewer-Address header
// ("IP:port") and falls back to c.ClientIP().
func GetRealClientIP(c *gin.Context) string {
	if viewerAddr := c.GetHeader("CloudFront-Viewer-Address"); viewerAddr != "" {
		if colonIdx := strings.LastIndex(viewerAddr, ":"); colonIdx > 0 {
			return viewerAddr[:colonIdx]
		}
		return viewerAddr
	}
	return c.ClientIP()
}

// Middleware tags the request context with request metadata, recovers panics and
// emits one metrics line per request.
func Middleware(l *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%s", uuid.New().String())
			c.Request.Header.Set("X-Request-ID", requestID)
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		ctx = WithFields(ctx,
			Field{"request_id", requestID},
			Field{"path", c.FullPath()},
			Field{"method", c.Request.Method},
			Field{"client_ip", GetRealClientIP(c)},
			Field{"user_agent", c.Request.UserAgent()},
		)

		// Spreadsheet uploads are the large requests
		if c.Request.ContentLength > 0 {
			ctx = WithFields(ctx, Field{"content_length", c.Request.ContentLength})
		}
		if len(c.Request.URL.RawQuery) > 0 {
			ctx = WithFields(ctx, Field{"query_params", c.Request.URL.RawQuery})
		}

		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				l.Error(c.Request.Context(), "Recovered from panic", fmt.Errorf("reason: %+v", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}

			if c.Request.URL.Path == "/health" {
				return
			}
			fields := []MetricField{
				{"status", c.Writer.Status()},
				{"latency_ms", time.Since(start).Milliseconds()},
				{"response_bytes", c.Writer.Size()},
			}
			if userID := c.GetString("User-ID"); userID != "" {
				fields = append(fields, MetricField{"user_id", userID})
			}
			l.Metrics(c.Request.Context(), fields...)
		}()
		c.Next()
	}
}
