// Package wizard models the onboarding flow as an explicit step/answers
// record with pure transitions, instead of a form mutated field by
// field across steps.
package wizard

import (
	"fmt"
	"strings"

	"github.com/autointern/server/internal/domain"
)

const (
	StepGoal = iota + 1
	StepCareerPath
	StepExperience
	StepCompanies
	StepSource
	StepReview

	firstStep = StepGoal
	lastStep  = StepReview
)

// Answers collects everything the wizard asks for.
type Answers struct {
	Goal       domain.Goal
	CareerPath string
	Experience string
	Companies  string
	SourceText string
	SourceKind domain.SourceKind
}

// Wizard is an immutable snapshot of the flow. Transitions return a new
// value; the zero value is not valid, use Start.
type Wizard struct {
	Step    int
	Answers Answers
}

func Start() Wizard {
	return Wizard{Step: firstStep}
}

// Next advances one step, clamped at the review step.
func (w Wizard) Next() Wizard {
	if w.Step < lastStep {
		w.Step++
	}
	return w
}

// Back retreats one step, clamped at the first step.
func (w Wizard) Back() Wizard {
	if w.Step > firstStep {
		w.Step--
	}
	return w
}

func (w Wizard) WithGoal(g domain.Goal) Wizard {
	w.Answers.Goal = g
	return w
}

func (w Wizard) WithCareerPath(v string) Wizard {
	w.Answers.CareerPath = v
	return w
}

func (w Wizard) WithExperience(v string) Wizard {
	w.Answers.Experience = v
	return w
}

func (w Wizard) WithCompanies(v string) Wizard {
	w.Answers.Companies = v
	return w
}

func (w Wizard) WithSource(text string, kind domain.SourceKind) Wizard {
	w.Answers.SourceText = text
	w.Answers.SourceKind = kind
	return w
}

// Complete validates the collected answers and yields the composition
// input. The source step is optional for the quick-draft path.
func (w Wizard) Complete() (domain.EmailRequest, error) {
	a := w.Answers
	for _, field := range []struct {
		name, value string
	}{
		{"goal", string(a.Goal)},
		{"career path", a.CareerPath},
		{"experience", a.Experience},
		{"companies", a.Companies},
	} {
		if strings.TrimSpace(field.value) == "" {
			return domain.EmailRequest{}, fmt.Errorf("%w: %s is required", domain.ErrInvalidRequest, field.name)
		}
	}
	return domain.EmailRequest{
		Goal:       a.Goal,
		CareerPath: a.CareerPath,
		Experience: a.Experience,
		Companies:  a.Companies,
		SourceText: a.SourceText,
		SourceKind: a.SourceKind,
	}, nil
}
