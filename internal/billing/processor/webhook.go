package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"leads-server/internal/observability"
	"leads-server/internal/store"

	"github.com/stripe/stripe-go/v79"
)

const subscriptionStatusActive = "active"

// InvoicePaymentSucceeded records the paid billing window and rewards the user's referrer
func (p *BillingProcessor) InvoicePaymentSucceeded(ctx context.Context, invoice stripe.Invoice) error {
	if invoice.Customer == nil || invoice.Customer.ID == "" {
		return fmt.Errorf("%w: invoice %s has no customer", ErrMalformedEvent, invoice.ID)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_customer_id", Value: invoice.Customer.ID},
		observability.Field{Key: "invoice_id", Value: invoice.ID},
	)

	user, err := p.store.GetUserByStripeCustomerID(ctx, invoice.Customer.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "payment for unknown customer ignored")
			return nil
		}
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})

	if invoice.Subscription != nil && invoice.Subscription.ID != "" {
		start, end := invoicePeriod(invoice)
		_, err := p.store.UpsertSubscription(ctx, store.UpsertSubscriptionParams{
			UserID:    user.ID,
			StripeID:  invoice.Subscription.ID,
			Status:    subscriptionStatusActive,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			return err
		}
	}

	// Referral failures must not fail the payment acknowledgement
	if err := p.referrals.ProcessPaymentSucceeded(ctx, user.ID); err != nil {
		p.logger.Error(ctx, "failed to process referral reward", err)
	}

	p.logger.Info(ctx, "invoice payment recorded")
	return nil
}

// SubscriptionChanged mirrors status and end date of an updated or deleted subscription
func (p *BillingProcessor) SubscriptionChanged(ctx context.Context, sub stripe.Subscription) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_subscription_id", Value: sub.ID},
		observability.Field{Key: "status", Value: string(sub.Status)},
	)

	end := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	if sub.EndedAt > 0 {
		end = time.Unix(sub.EndedAt, 0).UTC()
	}

	err := p.store.UpdateSubscriptionByStripeID(ctx, sub.ID, string(sub.Status), end)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "update for unknown subscription ignored")
			return nil
		}
		return err
	}

	p.logger.Info(ctx, "subscription updated")
	return nil
}

func (p *BillingProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: event.ID},
		observability.Field{Key: "event_type", Value: string(event.Type)},
	)

	switch event.Type {
	case "invoice.payment_succeeded":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			p.logger.Error(ctx, "failed to unmarshal invoice", err)
			return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		return p.InvoicePaymentSucceeded(ctx, invoice)
	case "customer.subscription.updated", "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			p.logger.Error(ctx, "failed to unmarshal subscription", err)
			return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
		}
		return p.SubscriptionChanged(ctx, sub)
	default:
		p.logger.Debug(ctx, "ignoring webhook event")
	}

	return nil
}

func invoicePeriod(invoice stripe.Invoice) (time.Time, time.Time) {
	start, end := invoice.PeriodStart, invoice.PeriodEnd
	if invoice.Lines != nil && len(invoice.Lines.Data) > 0 && invoice.Lines.Data[0].Period != nil {
		start = invoice.Lines.Data[0].Period.Start
		end = invoice.Lines.Data[0].Period.End
	}
	return time.Unix(start, 0).UTC(), time.Unix(end, 0).UTC()
}
