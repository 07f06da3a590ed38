package composer

import (
	"fmt"
	"strings"
)

// Fallback renders the deterministic smart-email body used when the
// generative provider is unavailable or fails. The source text is
// scanned for three keyword families and the corresponding clauses are
// swapped in; the result always references the company and position.
func Fallback(content, company, position string) string {
	lower := strings.ToLower(content)
	hasExperience := containsAny(lower, "experience", "worked")
	hasEducation := containsAny(lower, "university", "college", "degree")
	hasTech := containsAny(lower, "software", "programming", "development")

	experienceClause := "As an enthusiastic candidate"
	if hasExperience {
		experienceClause = "With my relevant professional experience"
	}
	educationClause := "strong foundation"
	if hasEducation {
		educationClause = "educational background"
	}
	techClause := "My dedication and eagerness to learn"
	if hasTech {
		techClause = "My technical skills and passion for technology"
	}

	var b strings.Builder
	b.WriteString("Dear Hiring Manager,\n\n")
	fmt.Fprintf(&b, "I hope this email finds you well. I am writing to express my strong interest in the %s position at %s.\n\n", position, company)
	fmt.Fprintf(&b, "%s and %s, I am excited about the opportunity to contribute to %s's innovative work. %s align well with the requirements of this role.\n\n",
		experienceClause, educationClause, company, techClause)
	fmt.Fprintf(&b, "%s has always impressed me with its commitment to excellence and innovation in the industry. I would welcome the opportunity to discuss how my background and enthusiasm can contribute to your team's continued success.\n\n", company)
	b.WriteString("I have attached my resume for your review and would be grateful for the opportunity to discuss this position further. Thank you for considering my application.\n\n")
	b.WriteString(signature)
	return b.String()
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
