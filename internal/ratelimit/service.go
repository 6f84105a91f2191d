package ratelimit

import (
	"context"
	"fmt"
	"time"

	"leads-server/internal/observability"

	"github.com/google/uuid"
)

// Window records hits in a sliding window and reports how many were already inside it
type Window interface {
	SlidingWindowHit(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error)
	IsEnabled() bool
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service handles per-client request rate limiting
type Service struct {
	window Window
	period time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter counting requests per minute
func NewService(window Window, logger *observability.Logger) *Service {
	return &Service{
		window: window,
		period: time.Minute,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit counts a request for key and reports whether it is within limit.
// Without a backing window every request is allowed.
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) (RateLimitResult, error) {
	now := s.now()
	if s.window == nil || !s.window.IsEnabled() {
		return RateLimitResult{Allowed: true, Limit: limit, Remaining: limit, ResetAt: now.Add(s.period)}, nil
	}

	count, oldest, err := s.window.SlidingWindowHit(ctx, key, fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()), now, s.period)
	if err != nil {
		return RateLimitResult{}, err
	}

	if int(count) >= limit {
		resetAt := now.Add(s.period)
		if !oldest.IsZero() {
			resetAt = oldest.Add(s.period)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(s.period),
	}, nil
}
