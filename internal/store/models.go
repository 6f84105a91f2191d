package store

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a sales lead imported from a spreadsheet or edited by an admin
type Lead struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	LeadID         string     `db:"lead_id" json:"leadId"`
	Name           string     `db:"name" json:"name"`
	Email          string     `db:"email" json:"email"`
	Phone          *string    `db:"phone" json:"phone,omitempty"`
	Category       *string    `db:"category" json:"category,omitempty"`
	City           *string    `db:"city" json:"city,omitempty"`
	Country        *string    `db:"country" json:"country,omitempty"`
	AddressStreet  *string    `db:"address_street" json:"addressStreet,omitempty"`
	LinkedIn       *string    `db:"linkedin" json:"linkedin,omitempty"`
	FacebookLink   *string    `db:"facebook_link" json:"facebookLink,omitempty"`
	WebsiteLink    *string    `db:"website_link" json:"websiteLink,omitempty"`
	GoogleMapLink  *string    `db:"google_map_link" json:"googleMapLink,omitempty"`
	Instagram      *string    `db:"instagram" json:"instagram,omitempty"`
	LastVerifiedAt *time.Time `db:"last_verified_at" json:"lastVerifiedAt,omitempty"`
	UploadSequence int64      `db:"upload_sequence" json:"uploadSequence"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// LeadFields are the editable attributes of a lead
type LeadFields struct {
	LeadID         string
	Name           string
	Email          string
	Phone          *string
	Category       *string
	City           *string
	Country        *string
	AddressStreet  *string
	LinkedIn       *string
	FacebookLink   *string
	WebsiteLink    *string
	GoogleMapLink  *string
	Instagram      *string
	LastVerifiedAt *time.Time
}

// CreateLeadParams represents parameters for inserting a lead
type CreateLeadParams struct {
	LeadFields
	UploadSequence int64
}

// User is an account that can refer other users and send campaigns
type User struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	Role             string    `db:"role"`
	ReferralCode     *string   `db:"referral_code"`
	StripeCustomerID *string   `db:"stripe_customer_id"`
	TotalReferrals   int       `db:"total_referrals"`
	ActiveReferrals  int       `db:"active_referrals"`
	TotalEarnings    float64   `db:"total_earnings"`
	CreatedAt        time.Time `db:"created_at"`
}

// Referral links a referred user to the user whose code they signed up with
type Referral struct {
	ID                 uuid.UUID `db:"id"`
	ReferrerID         uuid.UUID `db:"referrer_id"`
	ReferredID         uuid.UUID `db:"referred_id"`
	JoinedAt           time.Time `db:"joined_at"`
	IsActive           bool      `db:"is_active"`
	SubscriptionStatus string    `db:"subscription_status"`
}

// ReferredUser is a referral joined with the referred user's profile
type ReferredUser struct {
	Referral
	UserName      string    `db:"user_name"`
	UserEmail     string    `db:"user_email"`
	UserCreatedAt time.Time `db:"user_created_at"`
}

type Subscription struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	StripeID  string    `db:"stripe_id"`
	Status    string    `db:"status"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

// Email campaign targeting types
const (
	EmailTypeBulk     = "bulk"
	EmailTypeCategory = "category"
	EmailTypeCity     = "city"
	EmailTypeCountry  = "country"
	EmailTypeSelected = "selected"
)

// Per-recipient delivery outcomes
const (
	RecipientStatusSent   = "sent"
	RecipientStatusFailed = "failed"
)

// EmailFeedback is the append-only record of one campaign send
type EmailFeedback struct {
	ID              uuid.UUID                `db:"id" json:"id"`
	UserID          uuid.UUID                `db:"user_id" json:"userId"`
	Subject         string                   `db:"subject" json:"subject"`
	Message         string                   `db:"message" json:"message"`
	EmailType       string                   `db:"email_type" json:"emailType"`
	Category        *string                  `db:"category" json:"category,omitempty"`
	City            *string                  `db:"city" json:"city,omitempty"`
	Country         *string                  `db:"country" json:"country,omitempty"`
	TotalRecipients int                      `db:"total_recipients" json:"totalRecipients"`
	SuccessCount    int                      `db:"success_count" json:"successCount"`
	FailedCount     int                      `db:"failed_count" json:"failedCount"`
	SentAt          time.Time                `db:"sent_at" json:"sentAt"`
	Recipients      []EmailFeedbackRecipient `db:"-" json:"recipients,omitempty"`
}

type EmailFeedbackRecipient struct {
	FeedbackID uuid.UUID  `db:"feedback_id" json:"-"`
	LeadID     *uuid.UUID `db:"lead_id" json:"leadId,omitempty"`
	Email      string     `db:"email" json:"email"`
	Name       *string    `db:"name" json:"name,omitempty"`
	Status     string     `db:"status" json:"status"`
}

// ComposeResponse is a stored AI generation for the compose feature
type ComposeResponse struct {
	ID        uuid.UUID  `db:"id"`
	UserID    *uuid.UUID `db:"user_id"`
	Channel   string     `db:"channel"`
	Prompt    string     `db:"prompt"`
	AIText    string     `db:"ai_text"`
	Model     string     `db:"model"`
	CreatedAt time.Time  `db:"created_at"`
}
