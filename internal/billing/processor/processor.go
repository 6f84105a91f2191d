package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = errors.New("malformed webhook event")
)

// BillingStore defines the database operations required by BillingProcessor
type BillingStore interface {
	GetUserByStripeCustomerID(ctx context.Context, customerID string) (store.User, error)
	UpsertSubscription(ctx context.Context, params store.UpsertSubscriptionParams) (store.Subscription, error)
	UpdateSubscriptionByStripeID(ctx context.Context, stripeID, status string, endDate time.Time) error
}

// ReferralRewarder credits the referrer of a user whose payment went through
type ReferralRewarder interface {
	ProcessPaymentSucceeded(ctx context.Context, userID uuid.UUID) error
}

type BillingProcessor struct {
	webhookSecret string
	store         BillingStore
	referrals     ReferralRewarder
	logger        *observability.Logger
}

func New(webhookSecret string, store BillingStore, referrals ReferralRewarder, logger *observability.Logger) BillingProcessor {
	return BillingProcessor{
		webhookSecret: webhookSecret,
		store:         store,
		referrals:     referrals,
		logger:        logger,
	}
}

// VerifyEvent checks the Stripe-Signature header against the raw payload
func (p *BillingProcessor) VerifyEvent(ctx context.Context, payload []byte, signatureHeader string) (stripe.Event, error) {
	if signatureHeader == "" {
		return stripe.Event{}, ErrInvalidSignature
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.webhookSecret)
	if err != nil {
		p.logger.InfoWithError(ctx, "rejected webhook payload", err)
		return stripe.Event{}, ErrInvalidSignature
	}
	return event, nil
}
