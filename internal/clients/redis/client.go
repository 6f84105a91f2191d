package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leads-server/internal/config"
	"leads-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client. A disabled config yields a nil client.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "redis_addr", Value: cfg.Addr()},
		observability.Field{Key: "redis_db", Value: cfg.DB},
	)
	logger.Info(ctx, "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SlidingWindowHit records one hit at now in the sorted set at key after dropping hits
// older than window. It returns the number of hits inside the window before this one
// and the time of the oldest of them.
func (c *Client) SlidingWindowHit(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error) {
	if !c.IsEnabled() {
		return 0, time.Time{}, ErrNotInitialized
	}

	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	var (
		count  *redis.IntCmd
		oldest *redis.ZSliceCmd
	)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs))
		count = pipe.ZCard(ctx, key)
		oldest = pipe.ZRangeWithScores(ctx, key, 0, 0)
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
		pipe.Expire(ctx, key, 2*window)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to record rate limit hit: %w", err)
	}

	var oldestAt time.Time
	if zs := oldest.Val(); len(zs) > 0 {
		oldestAt = time.UnixMilli(int64(zs[0].Score))
	}
	return count.Val(), oldestAt, nil
}
