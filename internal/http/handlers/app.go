// Package handlers contains the HTTP handlers for the API. All handlers
// hang off App, which carries the shared dependencies.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/autointern/server/internal/billing"
	"github.com/autointern/server/internal/gate"
	"github.com/autointern/server/internal/infra"
	"github.com/autointern/server/internal/metrics"
	"github.com/autointern/server/internal/middleware"
	"github.com/autointern/server/internal/providers/draft"
)

type App struct {
	SQL       infra.SQLExecutor
	Logger    zerolog.Logger
	Drafter   draft.Drafter
	Gate      *gate.Gate
	Billing   *billing.Client
	Metrics   *metrics.Collector
	JWTSecret string
}

func (a *App) json(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Logger.Error().Err(err).Msg("encode response")
	}
}

func (a *App) error(w http.ResponseWriter, status int, code, msg string) {
	a.json(w, status, map[string]string{"error": msg, "code": code})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}
