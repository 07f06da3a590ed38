package composer

import (
	"strings"
	"testing"

	"github.com/autointern/server/internal/domain"
)

func TestComposeAllGoals(t *testing.T) {
	t.Parallel()
	goals := []domain.Goal{domain.GoalInternships, domain.GoalJobs, domain.GoalResearch, domain.GoalReferrals}
	for _, goal := range goals {
		goal := goal
		t.Run(string(goal), func(t *testing.T) {
			t.Parallel()
			draft := Compose(domain.EmailRequest{
				Goal:       goal,
				CareerPath: "Software Engineering",
				Experience: "Intermediate",
				Companies:  "Startups",
			})
			if draft.Body == "" {
				t.Fatal("Compose returned empty body")
			}
			if draft.Subject == "" {
				t.Fatal("Compose returned empty subject")
			}
			if !strings.Contains(draft.Body, "software engineering") {
				t.Fatalf("body does not mention career path: %q", draft.Body)
			}
			if !strings.HasSuffix(draft.Body, "[Your Name]") {
				t.Fatalf("body does not end with signature: %q", draft.Body)
			}
		})
	}
}

func TestComposeNeverEchoesFAANG(t *testing.T) {
	t.Parallel()
	goals := []domain.Goal{domain.GoalInternships, domain.GoalJobs, domain.GoalResearch, domain.GoalReferrals}
	for _, goal := range goals {
		draft := Compose(domain.EmailRequest{
			Goal:       goal,
			CareerPath: "Data Science",
			Experience: "Beginner",
			Companies:  "FAANG",
		})
		if strings.Contains(draft.Body, "FAANG") {
			t.Fatalf("goal %s: body leaks the literal FAANG: %q", goal, draft.Body)
		}
	}
}

func TestComposeFAANGSubstitutions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		goal   domain.Goal
		phrase string
	}{
		{domain.GoalInternships, "innovative technology companies"},
		{domain.GoalJobs, "a leading technology company"},
		{domain.GoalReferrals, "leading tech companies"},
	}
	for _, tc := range cases {
		draft := Compose(domain.EmailRequest{Goal: tc.goal, CareerPath: "ML", Experience: "Advanced", Companies: "FAANG"})
		if !strings.Contains(draft.Body, tc.phrase) {
			t.Fatalf("goal %s: body missing phrase %q: %q", tc.goal, tc.phrase, draft.Body)
		}
	}
}

func TestComposeUnknownGoalFallsBackToInternships(t *testing.T) {
	t.Parallel()
	req := domain.EmailRequest{Goal: "Networking", CareerPath: "Design", Experience: "Beginner", Companies: "Agencies"}
	draft := Compose(req)
	if !strings.Contains(draft.Body, "internship opportunities") {
		t.Fatalf("unknown goal did not use internship template: %q", draft.Body)
	}
	// other company categories are echoed lower-cased
	if !strings.Contains(draft.Body, "agencies") {
		t.Fatalf("company category not echoed: %q", draft.Body)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	t.Parallel()
	req := domain.EmailRequest{Goal: domain.GoalJobs, CareerPath: "Backend Engineering", Experience: "Advanced", Companies: "Fintech"}
	first := Compose(req)
	second := Compose(req)
	if first != second {
		t.Fatalf("Compose is not deterministic:\n%q\n%q", first, second)
	}
}
