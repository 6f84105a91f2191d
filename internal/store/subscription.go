package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UpsertSubscriptionParams struct {
	UserID    uuid.UUID
	StripeID  string
	Status    string
	StartDate time.Time
	EndDate   time.Time
}

const sqlUpsertSubscription = `
INSERT INTO subscriptions (user_id, stripe_id, status, start_date, end_date)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET stripe_id = EXCLUDED.stripe_id,
    status = EXCLUDED.status,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    updated_at = NOW()
RETURNING id, user_id, stripe_id, status, start_date, end_date
`

// UpsertSubscription records the current billing window of a user's subscription
func (s *Store) UpsertSubscription(ctx context.Context, params UpsertSubscriptionParams) (Subscription, error) {
	var sub Subscription
	err := s.db.GetContext(ctx, &sub, sqlUpsertSubscription,
		params.UserID,
		params.StripeID,
		params.Status,
		params.StartDate,
		params.EndDate)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert subscription", err)
		return Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return sub, nil
}

const sqlUpdateSubscriptionByStripeID = `
UPDATE subscriptions
SET status = $2, end_date = $3, updated_at = NOW()
WHERE stripe_id = $1
`

// UpdateSubscriptionByStripeID mirrors a status change reported by the payment provider
func (s *Store) UpdateSubscriptionByStripeID(ctx context.Context, stripeID, status string, endDate time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateSubscriptionByStripeID, stripeID, status, endDate)
	if err != nil {
		s.logger.Error(ctx, "failed to update subscription", err)
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read updated rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlHasSubscriptionEndingAfter = `
SELECT EXISTS (
    SELECT 1 FROM subscriptions
    WHERE user_id = $1 AND end_date >= $2
)
`

// HasSubscriptionEndingAfter reports whether the user has a subscription whose window reaches t
func (s *Store) HasSubscriptionEndingAfter(ctx context.Context, userID uuid.UUID, t time.Time) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlHasSubscriptionEndingAfter, userID, t)
	if err != nil {
		s.logger.Error(ctx, "failed to check subscription window", err)
		return false, fmt.Errorf("failed to check subscription window: %w", err)
	}
	return exists, nil
}
