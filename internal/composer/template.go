package composer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/autointern/server/internal/domain"
)

// sections holds the pieces of one goal template before assembly.
type sections struct {
	subject  string
	greeting string
	intro    string
	body     string
	closing  string
}

const signature = "Best regards,\n[Your Name]"

var titleCaser = cases.Title(language.English)

// Compose renders the deterministic quick-draft email for an onboarding
// submission. It never fails: unknown goals use the internship template,
// and every field is interpolated as plain text. Identical input yields
// byte-identical output.
func Compose(req domain.EmailRequest) domain.EmailDraft {
	s := buildSections(req)
	body := fmt.Sprintf("%s\n\n%s %s\n\n%s\n\n%s", s.greeting, s.intro, s.body, s.closing, signature)
	return domain.EmailDraft{Subject: s.subject, Body: body}
}

func buildSections(req domain.EmailRequest) sections {
	career := strings.ToLower(req.CareerPath)
	careerTitle := titleCaser.String(req.CareerPath)
	experience := strings.ToLower(req.Experience)

	goal := req.Goal
	if !domain.KnownGoal(goal) {
		goal = domain.GoalInternships
	}

	switch goal {
	case domain.GoalJobs:
		return sections{
			subject:  fmt.Sprintf("%s Position Application", careerTitle),
			greeting: "Dear Hiring Manager,",
			intro:    fmt.Sprintf("I am writing to inquire about %s opportunities at your organization.", career),
			body: fmt.Sprintf("With my %s background in %s, I am excited about the possibility of contributing to %s.",
				experience, career, companyPhrase(req.Companies, "a leading technology company", "your organization")),
			closing: "I look forward to the opportunity to discuss how my experience aligns with your team's needs.",
		}
	case domain.GoalResearch:
		return sections{
			subject:  fmt.Sprintf("Research Collaboration Inquiry - %s", careerTitle),
			greeting: "Dear Professor/Researcher,",
			intro:    fmt.Sprintf("I am reaching out to explore potential research opportunities in %s.", career),
			body:     fmt.Sprintf("As someone with %s experience in this field, I am particularly interested in contributing to cutting-edge research projects.", experience),
			closing:  "I would be honored to discuss potential collaboration opportunities at your convenience.",
		}
	case domain.GoalReferrals:
		return sections{
			subject:  fmt.Sprintf("Referral Request - %s Opportunities", careerTitle),
			greeting: "Hello,",
			intro:    fmt.Sprintf("I hope this message finds you well. I am currently seeking %s opportunities and would greatly appreciate your insights.", career),
			body: fmt.Sprintf("Given your experience at %s, I would value any guidance or potential referrals you might be able to provide.",
				companyPhrase(req.Companies, "leading tech companies", "top organizations")),
			closing: "Thank you for your time and consideration. I look forward to hearing from you.",
		}
	default:
		return sections{
			subject:  fmt.Sprintf("%s Internship Application", careerTitle),
			greeting: "Dear Hiring Manager,",
			intro:    fmt.Sprintf("I am writing to express my strong interest in %s internship opportunities at your company.", career),
			body: fmt.Sprintf("As a %s student with a passion for %s, I am particularly drawn to %s that are shaping the future of the industry.",
				experience, career, companyPhrase(req.Companies, "innovative technology companies", strings.ToLower(req.Companies))),
			closing: "I would welcome the opportunity to discuss how my skills and enthusiasm can contribute to your team. Thank you for your consideration.",
		}
	}
}

// companyPhrase applies the company display rule: the literal "FAANG"
// never appears in an email body; each template carries its own generic
// replacement.
func companyPhrase(companies, faangPhrase, otherPhrase string) string {
	if companies == "FAANG" {
		return faangPhrase
	}
	return otherPhrase
}
