package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
	stripe "github.com/stripe/stripe-go/v82"

	"github.com/autointern/server/internal/domain"
	"github.com/autointern/server/internal/middleware"
	"github.com/autointern/server/internal/sqlinline"
)

const webhookMaxBody = 1 << 16

// SubscriptionStatus reports the gate decision for the caller. The
// route runs behind optional auth: with no session the decision is a
// sign-in redirect rather than a 401.
func (a *App) SubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	decision := a.Gate.Authorize(r.Context(), a.currentUserID(r))
	a.Metrics.RecordGateDecision(decision.Allowed)
	a.json(w, http.StatusOK, map[string]any{
		"allowed":  decision.Allowed,
		"redirect": decision.Redirect,
	})
}

// Plans lists the purchasable subscription options.
func (a *App) Plans(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"plans": a.Billing.Plans()})
}

type checkoutRequest struct {
	PriceID   string `json:"price_id"`
	ReturnURL string `json:"return_url"`
}

// CreateCheckout starts a Stripe checkout session for the caller,
// creating the Stripe customer on first use. The pending subscription
// row is upserted so the webhook can resolve the customer later.
func (a *App) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}
	if !a.Billing.Configured() {
		a.error(w, http.StatusServiceUnavailable, "billing_unconfigured", "billing is not configured")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		a.error(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	customerID, err := a.ensureStripeCustomer(r, userID)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("ensure stripe customer")
		a.error(w, http.StatusInternalServerError, "checkout_failed", "could not start checkout")
		return
	}

	priceID := req.PriceID
	if priceID == "" {
		priceID = a.Billing.DefaultPriceID()
	}

	url, err := a.Billing.CreateCheckoutSession(customerID, priceID, req.ReturnURL)
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("create checkout session")
		a.error(w, http.StatusInternalServerError, "checkout_failed", "could not start checkout")
		return
	}

	a.json(w, http.StatusOK, map[string]string{"url": url})
}

func (a *App) ensureStripeCustomer(r *http.Request, userID string) (string, error) {
	ctx := r.Context()

	var sub domain.Subscription
	err := a.SQL.QueryRow(ctx, sqlinline.QSelectSubscriptionByUser, userID).Scan(
		&sub.ID, &sub.UserID, &sub.StripeCustomerID, &sub.StripeSubID,
		&sub.Status, &sub.PlanInterval, &sub.CurrentPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	if sub.StripeCustomerID != "" {
		return sub.StripeCustomerID, nil
	}

	customerID, err := a.Billing.CreateCustomer(middleware.EmailFromContext(ctx))
	if err != nil {
		return "", err
	}

	var stored string
	if err := a.SQL.QueryRow(ctx, sqlinline.QInsertPendingSubscription, userID, customerID).Scan(&stored); err != nil {
		return "", err
	}
	return stored, nil
}

// BillingWebhook ingests Stripe subscription lifecycle events. The
// signature is verified before anything is parsed; unknown event types
// are acknowledged and ignored.
func (a *App) BillingWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, webhookMaxBody))
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid_payload", "could not read payload")
		return
	}

	event, err := a.Billing.ConstructWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		a.Logger.Warn().Err(err).Msg("webhook signature verification failed")
		a.error(w, http.StatusBadRequest, "invalid_signature", "invalid signature")
		return
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		if err := a.applySubscriptionEvent(r, event); err != nil {
			a.Logger.Error().Err(err).Str("event_type", string(event.Type)).Msg("apply subscription event")
			a.error(w, http.StatusInternalServerError, "webhook_failed", "could not process event")
			return
		}
	default:
		a.Logger.Debug().Str("event_type", string(event.Type)).Msg("ignoring webhook event")
	}

	a.json(w, http.StatusOK, map[string]string{"received": "true"})
}

func (a *App) applySubscriptionEvent(r *http.Request, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}
	if sub.Customer == nil {
		return errors.New("subscription event without customer")
	}

	status := domain.SubscriptionInactive
	switch {
	case event.Type == "customer.subscription.deleted":
		status = domain.SubscriptionCanceled
	case sub.Status == stripe.SubscriptionStatusActive, sub.Status == stripe.SubscriptionStatusTrialing:
		status = domain.SubscriptionActive
	}

	var interval string
	var periodEnd any
	if sub.Items != nil && len(sub.Items.Data) > 0 {
		item := sub.Items.Data[0]
		if item.Price != nil && item.Price.Recurring != nil {
			interval = string(item.Price.Recurring.Interval)
		}
		if item.CurrentPeriodEnd > 0 {
			periodEnd = unixTime(item.CurrentPeriodEnd)
		}
	}

	var userID string
	err := a.SQL.QueryRow(r.Context(), sqlinline.QUpdateSubscriptionByCustomer,
		sub.Customer.ID, string(status), interval, sub.ID, periodEnd).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Customer unknown to us; Stripe test events do this.
			a.Logger.Warn().Str("customer", sub.Customer.ID).Msg("webhook for unknown customer")
			return nil
		}
		return err
	}

	a.Logger.Info().
		Str("user_id", userID).
		Str("status", string(status)).
		Str("event_type", string(event.Type)).
		Msg("subscription updated from webhook")
	return nil
}

// RequireActiveSubscription gates a route on an active subscription.
// Denied requests get 403 with the redirect the client should follow.
func (a *App) RequireActiveSubscription(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := a.Gate.Authorize(r.Context(), a.currentUserID(r))
		a.Metrics.RecordGateDecision(decision.Allowed)
		if !decision.Allowed {
			a.json(w, http.StatusForbidden, map[string]any{
				"error":    "subscription required",
				"redirect": decision.Redirect,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unixTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}
