package domain

// Goal enumerates the outreach goals collected during onboarding.
// The set is closed; anything else is treated as GoalInternships.
type Goal string

const (
	GoalInternships Goal = "Internships"
	GoalJobs        Goal = "Jobs"
	GoalResearch    Goal = "Research"
	GoalReferrals   Goal = "Referrals"
)

// KnownGoal reports whether g belongs to the closed goal set.
func KnownGoal(g Goal) bool {
	switch g {
	case GoalInternships, GoalJobs, GoalResearch, GoalReferrals:
		return true
	}
	return false
}

// SourceKind identifies what the free-form source text represents.
type SourceKind string

const (
	SourceResume   SourceKind = "resume"
	SourceLinkedIn SourceKind = "linkedin"
)

// EmailRequest is the structured input to composition. A request is
// built once per submission and never mutated afterwards.
type EmailRequest struct {
	Goal          Goal
	CareerPath    string
	Experience    string
	Companies     string
	SourceText    string
	SourceKind    SourceKind
	TargetCompany string
	Position      string
}

// EmailDraft is the composition output. Body is non-empty whenever
// composition succeeds; the subject is derived, not generated.
type EmailDraft struct {
	Subject string
	Body    string
}
