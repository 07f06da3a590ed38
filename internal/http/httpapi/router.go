// Package httpapi wires the HTTP routes to their handlers.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/autointern/server/internal/http/handlers"
	"github.com/autointern/server/internal/infra"
	"github.com/autointern/server/internal/middleware"
)

// NewRouter builds the route tree. Draft generation for onboarding and
// the pricing endpoints are public; everything personalized requires a
// session, and analytics additionally require an active subscription.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/metrics", app.Metrics.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/plans", app.Plans)
		r.Post("/generate-email", app.GenerateEmail)
		r.Post("/billing/webhook", app.BillingWebhook)

		// The gate distinguishes "no session" from "no subscription",
		// so the status route parses a token when present instead of
		// demanding one.
		r.With(middleware.OptionalAuthJWT(cfg.JWTSecret)).
			Get("/billing/status", app.SubscriptionStatus)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))

			r.Post("/generate-smart-email", app.GenerateSmartEmail)
			r.Get("/me", app.Me)
			r.Post("/billing/checkout", app.CreateCheckout)

			r.Group(func(r chi.Router) {
				r.Use(app.RequireActiveSubscription)
				r.Get("/stats/summary", app.StatsSummary)
			})
		})
	})

	return r
}
