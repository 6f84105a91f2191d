package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"leads-server/internal/store"

	"github.com/google/uuid"
)

// ReferralStore defines the database operations required by ReferralProcessor
type ReferralStore interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	GetUserByReferralCode(ctx context.Context, code string) (store.User, error)
	SetUserReferralCode(ctx context.Context, userID uuid.UUID, code string) error
	HasSubscriptionEndingAfter(ctx context.Context, userID uuid.UUID, t time.Time) (bool, error)
	GetReferredUsers(ctx context.Context, referrerID uuid.UUID) ([]store.ReferredUser, error)
	GetReferralByReferredID(ctx context.Context, referredID uuid.UUID) (store.Referral, error)
	ActivateReferral(ctx context.Context, referredID, referrerID uuid.UUID) error
	RecomputeReferralCounts(ctx context.Context, referrerID uuid.UUID) error
}
