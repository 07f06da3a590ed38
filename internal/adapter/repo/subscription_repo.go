package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/autointern/server/internal/domain"
	"github.com/autointern/server/internal/infra"
	"github.com/autointern/server/internal/sqlinline"
)

// SubscriptionRepositoryPG implements domain.SubscriptionRepository
// backed by PostgreSQL. It reads through the SQLExecutor seam so tests
// can substitute the store.
type SubscriptionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSubscriptionRepository creates a new SubscriptionRepositoryPG.
func NewSubscriptionRepository(sql infra.SQLExecutor) *SubscriptionRepositoryPG {
	return &SubscriptionRepositoryPG{sql: sql}
}

// GetByUserID fetches the subscription row for a user. Missing rows map
// to domain.ErrNotFound.
func (r *SubscriptionRepositoryPG) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectSubscriptionByUser, userID)

	var s domain.Subscription
	err := row.Scan(&s.ID, &s.UserID, &s.StripeCustomerID, &s.StripeSubID,
		&s.Status, &s.PlanInterval, &s.CurrentPeriodEnd, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

var _ domain.SubscriptionRepository = (*SubscriptionRepositoryPG)(nil)
