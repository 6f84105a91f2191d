package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, role, referral_code, stripe_customer_id, total_referrals, active_referrals, total_earnings, created_at`

const sqlGetUserByID = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by id", err)
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlGetUserByReferralCode = `
SELECT ` + userColumns + `
FROM users
WHERE referral_code = $1`

func (s *Store) GetUserByReferralCode(ctx context.Context, code string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByReferralCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by referral code", err)
		return User{}, fmt.Errorf("failed to get user by referral code: %w", err)
	}
	return user, nil
}

const sqlGetUserByStripeCustomerID = `
SELECT ` + userColumns + `
FROM users
WHERE stripe_customer_id = $1`

func (s *Store) GetUserByStripeCustomerID(ctx context.Context, customerID string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByStripeCustomerID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get user by stripe customer id", err)
		return User{}, fmt.Errorf("failed to get user by stripe customer id: %w", err)
	}
	return user, nil
}

// ErrReferralCodeTaken is returned when another user already owns the code
var ErrReferralCodeTaken = errors.New("referral code taken")

const sqlSetUserReferralCode = `
UPDATE users
SET referral_code = $2, updated_at = NOW()
WHERE id = $1 AND referral_code IS NULL`

// SetUserReferralCode assigns a code to a user that has none yet
func (s *Store) SetUserReferralCode(ctx context.Context, userID uuid.UUID, code string) error {
	res, err := s.db.ExecContext(ctx, sqlSetUserReferralCode, userID, code)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrReferralCodeTaken
		}
		s.logger.Error(ctx, "failed to set referral code", err)
		return fmt.Errorf("failed to set referral code: %w", err)
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

const sqlRecomputeReferralCounts = `
UPDATE users u
SET total_referrals = c.total,
    active_referrals = c.active,
    updated_at = NOW()
FROM (
    SELECT COUNT(*) AS total, COUNT(*) FILTER (WHERE is_active) AS active
    FROM referrals
    WHERE referrer_id = $1
) c
WHERE u.id = $1`

// RecomputeReferralCounts derives total and active referral counts from the referral rows
func (s *Store) RecomputeReferralCounts(ctx context.Context, referrerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlRecomputeReferralCounts, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to recompute referral counts", err)
		return fmt.Errorf("failed to recompute referral counts: %w", err)
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
