package domain

import "context"

// SubscriptionRepository reads billing entitlements. Implementations
// return ErrNotFound when no row exists for the user.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Subscription, error)
}
