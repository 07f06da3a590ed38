package handlers

import (
	"net/http"

	"github.com/autointern/server/internal/sqlinline"
)

// StatsSummary reports aggregate product usage. The route sits behind
// the subscription gate.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	var totalUsers, templateDrafts, smartDrafts, failures, last24h int64
	err := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary).Scan(
		&totalUsers, &templateDrafts, &smartDrafts, &failures, &last24h)
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats summary query")
		a.error(w, http.StatusInternalServerError, "internal_error", "could not load stats")
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"totalUsers":     totalUsers,
		"templateDrafts": templateDrafts,
		"smartDrafts":    smartDrafts,
		"failures":       failures,
		"draftsLast24h":  last24h,
	})
}
