package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/autointern/server/internal/domain"
)

type stubSubs struct {
	sub   *domain.Subscription
	err   error
	calls int
}

func (s *stubSubs) GetByUserID(context.Context, string) (*domain.Subscription, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.sub, nil
}

func TestAuthorizeNoSessionRedirectsToSignIn(t *testing.T) {
	t.Parallel()
	subs := &stubSubs{sub: &domain.Subscription{Status: domain.SubscriptionActive}}
	g := New(subs, "", zerolog.Nop())

	d := g.Authorize(context.Background(), "")
	if d.Allowed {
		t.Fatal("expected denial without session")
	}
	if d.Redirect != SignInTarget {
		t.Fatalf("redirect = %q, want %q", d.Redirect, SignInTarget)
	}
	if subs.calls != 0 {
		t.Fatalf("subscription lookup called %d times without a session", subs.calls)
	}
}

func TestAuthorizeActiveSubscriptionAllows(t *testing.T) {
	t.Parallel()
	g := New(&stubSubs{sub: &domain.Subscription{UserID: "u1", Status: domain.SubscriptionActive}}, "", zerolog.Nop())
	d := g.Authorize(context.Background(), "u1")
	if !d.Allowed {
		t.Fatalf("expected allow, got redirect to %q", d.Redirect)
	}
}

func TestAuthorizeInactiveSubscriptionRedirects(t *testing.T) {
	t.Parallel()
	g := New(&stubSubs{sub: &domain.Subscription{UserID: "u1", Status: domain.SubscriptionInactive}}, "", zerolog.Nop())
	d := g.Authorize(context.Background(), "u1")
	if d.Allowed {
		t.Fatal("expected denial for inactive subscription")
	}
	if d.Redirect != DefaultRedirectTarget {
		t.Fatalf("redirect = %q, want %q", d.Redirect, DefaultRedirectTarget)
	}
}

func TestAuthorizeMissingRowRedirects(t *testing.T) {
	t.Parallel()
	g := New(&stubSubs{err: domain.ErrNotFound}, "", zerolog.Nop())
	d := g.Authorize(context.Background(), "u1")
	if d.Allowed {
		t.Fatal("expected denial for missing subscription row")
	}
	if d.Redirect != DefaultRedirectTarget {
		t.Fatalf("redirect = %q, want %q", d.Redirect, DefaultRedirectTarget)
	}
}

func TestAuthorizeLookupFailureFailsClosed(t *testing.T) {
	t.Parallel()
	g := New(&stubSubs{err: errors.New("connection refused")}, "", zerolog.Nop())
	d := g.Authorize(context.Background(), "u1")
	if d.Allowed {
		t.Fatal("lookup failure must not open the gate")
	}
	if d.Redirect != DefaultRedirectTarget {
		t.Fatalf("redirect = %q, want %q", d.Redirect, DefaultRedirectTarget)
	}
}

func TestAuthorizeHonorsConfiguredTarget(t *testing.T) {
	t.Parallel()
	g := New(&stubSubs{sub: &domain.Subscription{Status: domain.SubscriptionCanceled}}, "/upgrade", zerolog.Nop())
	d := g.Authorize(context.Background(), "u1")
	if d.Redirect != "/upgrade" {
		t.Fatalf("redirect = %q, want %q", d.Redirect, "/upgrade")
	}
}
