package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidReferral   = errors.New("invalid or expired referral code")
	ErrReferralCodeEmpty = errors.New("referral code is required")
	ErrReferralNotFound  = errors.New("referral not found")
)

const maxCodeAttempts = 5

type ReferralProcessor struct {
	store  ReferralStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store ReferralStore, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

type Referrer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ValidateReferralResponse struct {
	Valid    bool     `json:"valid"`
	Referrer Referrer `json:"referrer"`
}

// ValidateReferralCode looks up the owner of a code. The code is valid only while the
// owner has a subscription that has not ended.
func (p *ReferralProcessor) ValidateReferralCode(ctx context.Context, code string) (ValidateReferralResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ValidateReferralResponse{}, ErrReferralCodeEmpty
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "referral_code", Value: code})

	referrer, err := p.store.GetUserByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ValidateReferralResponse{}, ErrInvalidReferral
		}
		p.logger.Error(ctx, "failed to get referrer by code", err)
		return ValidateReferralResponse{}, err
	}

	active, err := p.store.HasSubscriptionEndingAfter(ctx, referrer.ID, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to check referrer subscription", err)
		return ValidateReferralResponse{}, err
	}
	if !active {
		return ValidateReferralResponse{}, ErrInvalidReferral
	}

	return ValidateReferralResponse{
		Valid:    true,
		Referrer: Referrer{Name: referrer.Name, Email: referrer.Email},
	}, nil
}

type ReferralStats struct {
	TotalReferrals  int     `json:"totalReferrals"`
	ActiveReferrals int     `json:"activeReferrals"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

type ReferredUserSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReferralEntry struct {
	User               ReferredUserSummary `json:"user"`
	JoinedAt           time.Time           `json:"joinedAt"`
	IsActive           bool                `json:"isActive"`
	SubscriptionStatus string              `json:"subscriptionStatus"`
}

type MyReferralsResponse struct {
	ReferralCode string          `json:"referralCode"`
	Stats        ReferralStats   `json:"stats"`
	Referrals    []ReferralEntry `json:"referrals"`
}

// GetMyReferrals returns the user's code, stats and referred users.
// A user without a code gets one assigned.
func (p *ReferralProcessor) GetMyReferrals(ctx context.Context, userID uuid.UUID) (MyReferralsResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	user, err := p.getUser(ctx, userID)
	if err != nil {
		return MyReferralsResponse{}, err
	}

	code, err := p.ensureReferralCode(ctx, user)
	if err != nil {
		return MyReferralsResponse{}, err
	}

	referred, err := p.store.GetReferredUsers(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get referred users", err)
		return MyReferralsResponse{}, err
	}

	entries := make([]ReferralEntry, 0, len(referred))
	for _, r := range referred {
		entries = append(entries, ReferralEntry{
			User: ReferredUserSummary{
				ID:        r.ReferredID,
				Name:      r.UserName,
				Email:     r.UserEmail,
				CreatedAt: r.UserCreatedAt,
			},
			JoinedAt:           r.JoinedAt,
			IsActive:           r.IsActive,
			SubscriptionStatus: r.SubscriptionStatus,
		})
	}

	return MyReferralsResponse{
		ReferralCode: code,
		Stats:        statsOf(user),
		Referrals:    entries,
	}, nil
}

type ReferralStatsResponse struct {
	ReferralCode    string  `json:"referralCode"`
	TotalReferrals  int     `json:"totalReferrals"`
	ActiveReferrals int     `json:"activeReferrals"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

func (p *ReferralProcessor) GetReferralStats(ctx context.Context, userID uuid.UUID) (ReferralStatsResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	user, err := p.getUser(ctx, userID)
	if err != nil {
		return ReferralStatsResponse{}, err
	}

	code, err := p.ensureReferralCode(ctx, user)
	if err != nil {
		return ReferralStatsResponse{}, err
	}

	stats := statsOf(user)
	return ReferralStatsResponse{
		ReferralCode:    code,
		TotalReferrals:  stats.TotalReferrals,
		ActiveReferrals: stats.ActiveReferrals,
		TotalEarnings:   stats.TotalEarnings,
	}, nil
}

// ProcessReferralReward activates the referral after the referred user's payment succeeded
// and recomputes the referrer's counts from the referral rows.
func (p *ReferralProcessor) ProcessReferralReward(ctx context.Context, referredID, referrerID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referred_id", Value: referredID.String()},
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
	)

	if err := p.store.ActivateReferral(ctx, referredID, referrerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "no referral to activate")
			return ErrReferralNotFound
		}
		p.logger.Error(ctx, "failed to activate referral", err)
		return err
	}

	if err := p.store.RecomputeReferralCounts(ctx, referrerID); err != nil {
		p.logger.Error(ctx, "failed to update referral stats", err)
		return err
	}

	p.logger.Info(ctx, "referral processed")
	return nil
}

// ProcessPaymentSucceeded rewards the referrer of a paying user, if the user was referred
func (p *ReferralProcessor) ProcessPaymentSucceeded(ctx context.Context, userID uuid.UUID) error {
	referral, err := p.store.GetReferralByReferredID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		p.logger.Error(ctx, "failed to get referral for paying user", err)
		return err
	}
	if referral.IsActive {
		return nil
	}
	return p.ProcessReferralReward(ctx, userID, referral.ReferrerID)
}

func (p *ReferralProcessor) getUser(ctx context.Context, userID uuid.UUID) (store.User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user", err)
		return store.User{}, err
	}
	return user, nil
}

func (p *ReferralProcessor) ensureReferralCode(ctx context.Context, user store.User) (string, error) {
	if user.ReferralCode != nil && *user.ReferralCode != "" {
		return *user.ReferralCode, nil
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := GenerateReferralCode()
		if err != nil {
			p.logger.Error(ctx, "failed to generate referral code", err)
			return "", err
		}

		err = p.store.SetUserReferralCode(ctx, user.ID, code)
		switch {
		case err == nil:
			p.logger.Info(ctx, "referral code assigned")
			return code, nil
		case errors.Is(err, store.ErrReferralCodeTaken):
			continue
		case errors.Is(err, store.ErrNotFound):
			// Assigned concurrently
			refreshed, err := p.getUser(ctx, user.ID)
			if err != nil {
				return "", err
			}
			if refreshed.ReferralCode != nil {
				return *refreshed.ReferralCode, nil
			}
			return "", ErrUserNotFound
		default:
			p.logger.Error(ctx, "failed to assign referral code", err)
			return "", err
		}
	}

	err := errors.New("referral code collisions exhausted attempts")
	p.logger.Error(ctx, "failed to assign referral code", err)
	return "", err
}

func statsOf(user store.User) ReferralStats {
	return ReferralStats{
		TotalReferrals:  user.TotalReferrals,
		ActiveReferrals: user.ActiveReferrals,
		TotalEarnings:   user.TotalEarnings,
	}
}
