package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type CreateEmailFeedbackParams struct {
	UserID     uuid.UUID
	Subject    string
	Message    string
	EmailType  string
	Category   *string
	City       *string
	Country    *string
	SentAt     time.Time
	Recipients []EmailFeedbackRecipient
}

const sqlCreateEmailFeedback = `
INSERT INTO email_feedback (user_id, subject, message, email_type, category, city, country,
	total_recipients, success_count, failed_count, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, user_id, subject, message, email_type, category, city, country,
	total_recipients, success_count, failed_count, sent_at
`

const sqlCreateEmailFeedbackRecipient = `
INSERT INTO email_feedback_recipients (feedback_id, lead_id, email, name, status)
VALUES ($1, $2, $3, $4, $5)
`

// CreateEmailFeedback writes the feedback record and its recipients in one transaction.
// Counts are derived from the recipient statuses.
func (s *Store) CreateEmailFeedback(ctx context.Context, params CreateEmailFeedbackParams) (EmailFeedback, error) {
	success, failed := 0, 0
	for _, r := range params.Recipients {
		if r.Status == RecipientStatusSent {
			success++
		} else {
			failed++
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin email feedback transaction", err)
		return EmailFeedback{}, fmt.Errorf("failed to begin email feedback transaction: %w", err)
	}
	defer tx.Rollback()

	var feedback EmailFeedback
	err = tx.GetContext(ctx, &feedback, sqlCreateEmailFeedback,
		params.UserID,
		params.Subject,
		params.Message,
		params.EmailType,
		params.Category,
		params.City,
		params.Country,
		len(params.Recipients),
		success,
		failed,
		params.SentAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create email feedback", err)
		return EmailFeedback{}, fmt.Errorf("failed to create email feedback: %w", err)
	}

	for _, r := range params.Recipients {
		_, err := tx.ExecContext(ctx, sqlCreateEmailFeedbackRecipient, feedback.ID, r.LeadID, r.Email, r.Name, r.Status)
		if err != nil {
			s.logger.Error(ctx, "failed to create email feedback recipient", err)
			return EmailFeedback{}, fmt.Errorf("failed to create email feedback recipient: %w", err)
		}
		r.FeedbackID = feedback.ID
		feedback.Recipients = append(feedback.Recipients, r)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit email feedback", err)
		return EmailFeedback{}, fmt.Errorf("failed to commit email feedback: %w", err)
	}
	return feedback, nil
}

const sqlListEmailFeedbackByUser = `
SELECT id, user_id, subject, message, email_type, category, city, country,
	total_recipients, success_count, failed_count, sent_at
FROM email_feedback
WHERE user_id = $1
ORDER BY sent_at DESC
LIMIT $2 OFFSET $3
`

// ListEmailFeedbackByUser returns a page of the user's campaign records, newest first
func (s *Store) ListEmailFeedbackByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]EmailFeedback, error) {
	feedback := []EmailFeedback{}
	err := s.db.SelectContext(ctx, &feedback, sqlListEmailFeedbackByUser, userID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list email feedback", err)
		return nil, fmt.Errorf("failed to list email feedback: %w", err)
	}
	return feedback, nil
}

const sqlCountEmailFeedbackByUser = `SELECT COUNT(*) FROM email_feedback WHERE user_id = $1`

func (s *Store) CountEmailFeedbackByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountEmailFeedbackByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to count email feedback", err)
		return 0, fmt.Errorf("failed to count email feedback: %w", err)
	}
	return count, nil
}
