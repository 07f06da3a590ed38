// Package gate implements the subscription access check for dashboard
// routes. Policy: fail-closed — when the entitlement store cannot be
// read the caller is redirected, never silently allowed.
package gate

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/autointern/server/internal/domain"
)

const (
	// SignInTarget is where unauthenticated callers are sent.
	SignInTarget = "/sign-in"
	// DefaultRedirectTarget is where callers without an active
	// subscription are sent.
	DefaultRedirectTarget = "/pricing"

	// The upstream design had no timeout on the lookup; this bound
	// keeps a slow store from suspending the request indefinitely.
	lookupTimeout = 5 * time.Second
)

// Decision is the outcome of one gate evaluation. Exactly one of
// Allowed or Redirect is meaningful.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Gate evaluates subscription entitlements. Each check performs a fresh
// lookup; decisions are never cached across requests.
type Gate struct {
	subs     domain.SubscriptionRepository
	redirect string
	logger   zerolog.Logger
}

func New(subs domain.SubscriptionRepository, redirectTo string, logger zerolog.Logger) *Gate {
	if redirectTo == "" {
		redirectTo = DefaultRedirectTarget
	}
	return &Gate{subs: subs, redirect: redirectTo, logger: logger}
}

// Authorize resolves the access decision for a user. An empty user id
// means no session and always redirects to sign-in regardless of
// subscription state. Lookup failures redirect (fail-closed); a missing
// or non-active row redirects to the configured target.
func (g *Gate) Authorize(ctx context.Context, userID string) Decision {
	if userID == "" {
		return Decision{Redirect: SignInTarget}
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	sub, err := g.subs.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			g.logger.Error().Err(err).Str("user_id", userID).Msg("subscription lookup failed")
		}
		return Decision{Redirect: g.redirect}
	}
	if sub.IsActive() {
		return Decision{Allowed: true}
	}
	return Decision{Redirect: g.redirect}
}
