package jobs

import (
	"context"
	"fmt"

	"leads-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueLeadCampaign enqueues an email campaign and returns the task id
func (c *Client) EnqueueLeadCampaign(ctx context.Context, payload LeadCampaignPayload) (string, error) {
	task, err := NewLeadCampaignTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create lead campaign task", err)
		return "", err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue lead campaign task", err)
		return "", fmt.Errorf("failed to enqueue lead campaign task: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "task_id", Value: info.ID},
		observability.Field{Key: "queue", Value: info.Queue},
	)
	c.logger.Info(ctx, "enqueued lead campaign task")
	return info.ID, nil
}
