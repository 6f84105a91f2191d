package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeEmailLeadCampaign = "email:lead_campaign"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// A campaign run may send to every stored lead
const leadCampaignTimeout = 2 * time.Hour

// LeadCampaignPayload describes one email campaign send
type LeadCampaignPayload struct {
	UserID      uuid.UUID   `json:"user_id"`
	Subject     string      `json:"subject"`
	Message     string      `json:"message"`
	EmailType   string      `json:"email_type"`
	Category    string      `json:"category,omitempty"`
	City        string      `json:"city,omitempty"`
	Country     string      `json:"country,omitempty"`
	LeadIDs     []uuid.UUID `json:"lead_ids,omitempty"`
	RequestedAt time.Time   `json:"requested_at"`
}

// NewLeadCampaignTask creates a campaign task. It is never retried, a retry would
// deliver the same message twice to recipients that already got it.
func NewLeadCampaignTask(payload LeadCampaignPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lead campaign payload: %w", err)
	}
	return asynq.NewTask(TypeEmailLeadCampaign, data,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(0),
		asynq.Timeout(leadCampaignTimeout),
	), nil
}

// ParseLeadCampaignPayload decodes the payload of a campaign task
func ParseLeadCampaignPayload(task *asynq.Task) (LeadCampaignPayload, error) {
	var payload LeadCampaignPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadCampaignPayload{}, fmt.Errorf("failed to unmarshal lead campaign payload: %w", err)
	}
	return payload, nil
}
