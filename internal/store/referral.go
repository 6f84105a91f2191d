package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetReferralByReferredID = `
SELECT id, referrer_id, referred_id, joined_at, is_active, subscription_status
FROM referrals
WHERE referred_id = $1
`

// GetReferralByReferredID returns the referral through which the user signed up
func (s *Store) GetReferralByReferredID(ctx context.Context, referredID uuid.UUID) (Referral, error) {
	var referral Referral
	err := s.db.GetContext(ctx, &referral, sqlGetReferralByReferredID, referredID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Referral{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get referral by referred id", err)
		return Referral{}, fmt.Errorf("failed to get referral by referred id: %w", err)
	}
	return referral, nil
}

const sqlGetReferredUsers = `
SELECT r.id, r.referrer_id, r.referred_id, r.joined_at, r.is_active, r.subscription_status,
       u.name AS user_name, u.email AS user_email, u.created_at AS user_created_at
FROM referrals r
JOIN users u ON u.id = r.referred_id
WHERE r.referrer_id = $1
ORDER BY r.joined_at DESC
`

// GetReferredUsers returns all referrals made by a user joined with the referred profiles
func (s *Store) GetReferredUsers(ctx context.Context, referrerID uuid.UUID) ([]ReferredUser, error) {
	referred := []ReferredUser{}
	err := s.db.SelectContext(ctx, &referred, sqlGetReferredUsers, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to get referred users", err)
		return nil, fmt.Errorf("failed to get referred users: %w", err)
	}
	return referred, nil
}

const sqlActivateReferral = `
UPDATE referrals
SET is_active = TRUE,
    subscription_status = 'active',
    updated_at = NOW()
WHERE referred_id = $1 AND referrer_id = $2
`

// ActivateReferral marks the referral between the two users as active
func (s *Store) ActivateReferral(ctx context.Context, referredID, referrerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlActivateReferral, referredID, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to activate referral", err)
		return fmt.Errorf("failed to activate referral: %w", err)
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
