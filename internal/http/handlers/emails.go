package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/autointern/server/internal/composer"
	"github.com/autointern/server/internal/domain"
	"github.com/autointern/server/internal/providers/draft"
	"github.com/autointern/server/internal/sqlinline"
)

type generateEmailRequest struct {
	Goal       string `json:"goal"`
	CareerPath string `json:"careerPath"`
	Experience string `json:"experience"`
	Companies  string `json:"companies"`
	ResumeData string `json:"resumeData"`
	DataType   string `json:"dataType"`
}

type generateSmartEmailRequest struct {
	InputType     string `json:"inputType"`
	InputContent  string `json:"inputContent"`
	TargetCompany string `json:"targetCompany"`
	Position      string `json:"position"`
}

// GenerateEmail composes a deterministic outreach email from the
// onboarding answers. The route is public; a session only enriches the
// usage event.
func (a *App) GenerateEmail(w http.ResponseWriter, r *http.Request) {
	var req generateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	emailReq := domain.EmailRequest{
		Goal:       domain.Goal(req.Goal),
		CareerPath: req.CareerPath,
		Experience: req.Experience,
		Companies:  req.Companies,
		SourceText: req.ResumeData,
		SourceKind: domain.SourceKind(req.DataType),
	}

	out := composer.Compose(emailReq)

	a.Metrics.RecordDraft("template")
	a.recordUsage(r.Context(), a.currentUserID(r), "GENERATE_EMAIL", true, map[string]any{
		"goal": string(emailReq.Goal),
	})

	a.json(w, http.StatusOK, map[string]string{
		"email":   out.Body,
		"subject": out.Subject,
	})
}

// GenerateSmartEmail produces a provider-drafted email personalized from
// resume text or a profile link. Authentication is checked before any
// field validation so an anonymous caller learns nothing about the
// contract.
func (a *App) GenerateSmartEmail(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req generateSmartEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	content := strings.TrimSpace(req.InputContent)
	company := strings.TrimSpace(req.TargetCompany)
	position := strings.TrimSpace(req.Position)
	if content == "" || company == "" || position == "" {
		a.error(w, http.StatusBadRequest, "missing_fields", "Missing required fields")
		return
	}

	if req.InputType == string(domain.SourceLinkedIn) {
		content = "LinkedIn Profile: " + content
	}

	body, err := a.Drafter.Draft(r.Context(), draft.Request{
		Content:       content,
		TargetCompany: company,
		Position:      position,
	})
	if err != nil {
		a.Logger.Error().Err(err).Str("user_id", userID).Msg("smart draft failed")
		a.recordUsage(r.Context(), userID, "GENERATE_SMART_EMAIL", false, map[string]any{
			"company": company,
		})
		a.error(w, http.StatusInternalServerError, "draft_failed", "could not generate email")
		return
	}

	a.Metrics.RecordDraft("smart")
	a.recordUsage(r.Context(), userID, "GENERATE_SMART_EMAIL", true, map[string]any{
		"company":  company,
		"position": position,
	})

	a.json(w, http.StatusOK, map[string]string{"email": body})
}

// recordUsage writes an audit event. Failures are logged, never
// surfaced; analytics must not break the product path.
func (a *App) recordUsage(ctx context.Context, userID, action string, success bool, props map[string]any) {
	propsJSON, err := json.Marshal(props)
	if err != nil {
		propsJSON = []byte("{}")
	}
	var uid any
	if userID != "" {
		uid = userID
	}
	if _, err := a.SQL.Exec(ctx, sqlinline.QInsertUsageEvent, uid, action, success, string(propsJSON)); err != nil {
		a.Logger.Error().Err(err).Str("action", action).Msg("record usage event")
	}
}
