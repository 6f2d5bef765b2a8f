package types

// JobSignal is the normalized verdict from the job/content analyzer.
// Score is always within [0,100] after normalization.
type JobSignal struct {
	Score             int
	Label             string
	Reasons           []string
	RecommendedAction string
}

// CompanySignal is the normalized verdict from the company verifier.
// CompanyName and Profile are nil when the verifier had no data.
type CompanySignal struct {
	Verified    bool
	Score       int
	CompanyName *string
	RiskFactors []string
	Profile     *CompanyProfile
}

// ContextSource identifies which artifact produced a user-context signal.
type ContextSource string

const (
	// SourceProfileURL means the signal came from a profile-network URL.
	SourceProfileURL ContextSource = "profile_url"
	// SourceResume means the signal came from an uploaded resume file.
	SourceResume ContextSource = "resume_file"
)

// UserContextSignal is the normalized verdict from the profile/resume matcher.
// ContextSummary and Source are nil when the matcher did not report them.
type UserContextSignal struct {
	ProfileFound   bool
	ContextSummary *string
	RiskFactors    []string
	Source         *ContextSource
}
