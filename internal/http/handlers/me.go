package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/autointern/server/internal/domain"
	"github.com/autointern/server/internal/sqlinline"
)

// Me returns the caller's account and subscription snapshot.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var u domain.User
	err := a.SQL.QueryRow(r.Context(), sqlinline.QSelectUserByID, userID).Scan(
		&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load user")
		a.error(w, http.StatusInternalServerError, "internal_error", "could not load user")
		return
	}

	resp := map[string]any{
		"user": map[string]any{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.Name,
			"createdAt": u.CreatedAt.Format(time.RFC3339),
		},
	}

	var sub domain.Subscription
	err = a.SQL.QueryRow(r.Context(), sqlinline.QSelectSubscriptionByUser, userID).Scan(
		&sub.ID, &sub.UserID, &sub.StripeCustomerID, &sub.StripeSubID,
		&sub.Status, &sub.PlanInterval, &sub.CurrentPeriodEnd, &sub.CreatedAt, &sub.UpdatedAt)
	switch {
	case err == nil:
		s := map[string]any{
			"status":   string(sub.Status),
			"interval": sub.PlanInterval,
		}
		if sub.CurrentPeriodEnd != nil {
			s["currentPeriodEnd"] = sub.CurrentPeriodEnd.Format(time.RFC3339)
		}
		resp["subscription"] = s
	case errors.Is(err, pgx.ErrNoRows):
		resp["subscription"] = map[string]any{"status": string(domain.SubscriptionInactive)}
	default:
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("load subscription")
		resp["subscription"] = map[string]any{"status": string(domain.SubscriptionInactive)}
	}

	a.json(w, http.StatusOK, resp)
}
