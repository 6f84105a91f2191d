package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=campaign_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"leads-server/internal/jobs"
	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/hibiken/asynq"
)

// CampaignStore is the storage the campaign worker reads recipients from and records results to
type CampaignStore interface {
	ListLeadsForEmail(ctx context.Context, filter store.LeadRecipientFilter) ([]store.Lead, error)
	CreateEmailFeedback(ctx context.Context, params store.CreateEmailFeedbackParams) (store.EmailFeedback, error)
}

// EmailSender delivers a single HTML message
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

// CampaignWorker sends lead email campaigns
type CampaignWorker struct {
	store  CampaignStore
	sender EmailSender
	logger *observability.Logger
	now    func() time.Time
}

// NewCampaignWorker creates a new campaign worker
func NewCampaignWorker(store CampaignStore, sender EmailSender, logger *observability.Logger) *CampaignWorker {
	return &CampaignWorker{
		store:  store,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

// ProcessLeadCampaignTask processes an email:lead_campaign task (for Asynq)
func (w *CampaignWorker) ProcessLeadCampaignTask(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseLeadCampaignPayload(task)
	if err != nil {
		w.logger.Error(ctx, "failed to parse lead campaign payload", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	_, err = w.run(ctx, payload)
	return err
}

func (w *CampaignWorker) run(ctx context.Context, payload jobs.LeadCampaignPayload) (store.EmailFeedback, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: payload.UserID},
		observability.Field{Key: "email_type", Value: payload.EmailType},
	)

	leads, err := w.store.ListLeadsForEmail(ctx, store.LeadRecipientFilter{
		EmailType: payload.EmailType,
		Category:  payload.Category,
		City:      payload.City,
		Country:   payload.Country,
		LeadIDs:   payload.LeadIDs,
	})
	if err != nil {
		w.logger.Error(ctx, "failed to load campaign recipients", err)
		return store.EmailFeedback{}, fmt.Errorf("failed to load campaign recipients: %w", err)
	}

	body := RenderMessageHTML(payload.Message)
	recipients := make([]store.EmailFeedbackRecipient, 0, len(leads))
	for i := range leads {
		lead := leads[i]
		recipient := store.EmailFeedbackRecipient{
			LeadID: &lead.ID,
			Email:  lead.Email,
			Name:   &lead.Name,
			Status: store.RecipientStatusFailed,
		}
		if ctx.Err() == nil {
			if _, err := w.sender.SendEmail(ctx, lead.Email, payload.Subject, body); err != nil {
				w.logger.InfoWithError(observability.WithFields(ctx,
					observability.Field{Key: "lead_id", Value: lead.LeadID},
				), "campaign email failed", err)
			} else {
				recipient.Status = store.RecipientStatusSent
			}
		}
		recipients = append(recipients, recipient)
	}

	// The record is written even when the task was cancelled mid-send
	feedback, err := w.store.CreateEmailFeedback(context.WithoutCancel(ctx), store.CreateEmailFeedbackParams{
		UserID:     payload.UserID,
		Subject:    payload.Subject,
		Message:    payload.Message,
		EmailType:  payload.EmailType,
		Category:   optional(payload.Category),
		City:       optional(payload.City),
		Country:    optional(payload.Country),
		SentAt:     w.now(),
		Recipients: recipients,
	})
	if err != nil {
		w.logger.Error(ctx, "failed to record email feedback", err)
		return store.EmailFeedback{}, fmt.Errorf("failed to record email feedback: %w", err)
	}

	w.logger.Metrics(ctx,
		observability.MetricField{Key: "total_recipients", Value: feedback.TotalRecipients},
		observability.MetricField{Key: "success_count", Value: feedback.SuccessCount},
		observability.MetricField{Key: "failed_count", Value: feedback.FailedCount},
	)
	return feedback, ctx.Err()
}

// RenderMessageHTML escapes a plain-text message and keeps its line breaks
func RenderMessageHTML(message string) string {
	escaped := html.EscapeString(strings.ReplaceAll(message, "\r\n", "\n"))
	return "<div>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</div>"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
