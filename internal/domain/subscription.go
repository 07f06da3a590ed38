package domain

import "time"

// SubscriptionStatus enumerates billing entitlement states. Only
// SubscriptionActive grants access to gated routes.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription is the billing entitlement row for a user. It is written
// by the Stripe webhook processor and read-only everywhere else; the
// gate re-reads it on every check instead of caching.
type Subscription struct {
	ID               string
	UserID           string
	StripeCustomerID string
	StripeSubID      string
	Status           SubscriptionStatus
	PlanInterval     string
	CurrentPeriodEnd *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsActive reports whether the subscription grants access.
func (s Subscription) IsActive() bool {
	return s.Status == SubscriptionActive
}
