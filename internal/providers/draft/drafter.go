// Package draft produces personalized cold-email bodies. The OpenAI
// drafter calls a chat-completion endpoint; every failure degrades to
// the deterministic template drafter so callers always receive a body.
package draft

import (
	"context"

	"github.com/autointern/server/internal/composer"
)

const (
	templateProviderName = "template"
	openAIProviderName   = "openai"
)

// Request carries the inputs for one smart-email draft. Content is the
// processed source text (resume text, or a labeled profile URL).
type Request struct {
	Content       string
	TargetCompany string
	Position      string
}

// Drafter turns a request into an email body. Implementations return a
// non-empty body on success; callers treat any error as a provider
// failure.
type Drafter interface {
	Draft(ctx context.Context, req Request) (string, error)
}

// TemplateDrafter is the deterministic strategy. It never fails and is
// the terminal element of every fallback chain.
type TemplateDrafter struct{}

func NewTemplateDrafter() *TemplateDrafter {
	return &TemplateDrafter{}
}

func (t *TemplateDrafter) Draft(_ context.Context, req Request) (string, error) {
	return composer.Fallback(req.Content, req.TargetCompany, req.Position), nil
}

var _ Drafter = (*TemplateDrafter)(nil)
