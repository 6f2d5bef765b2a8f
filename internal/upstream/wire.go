package upstream

// Wire types mirror the analysis service's JSON exactly. Field names are load
// bearing: the deployed service and web frontend both depend on them.
// Pointers mark fields the service may omit; nil slices mean the key was
// absent (an empty JSON array decodes to a non-nil empty slice).

// JobAnalysisRequest is the input to the plain job analysis operation.
type JobAnalysisRequest struct {
	JobURL             *string `json:"job_url"`
	JobDescription     *string `json:"job_description"`
	LinkedInProfileURL *string `json:"linkedin_profile_url,omitempty"`
}

// EnhancedAnalysisRequest is the input to the job + company analysis operation.
type EnhancedAnalysisRequest struct {
	JobURL         *string `json:"job_url"`
	JobDescription *string `json:"job_description"`
	CompanyURL     *string `json:"company_url"`
}

// CompanyAnalysisRequest is the input to the company-only analysis operation.
type CompanyAnalysisRequest struct {
	CompanyURL string `json:"company_url"`
}

// UserAnalysis is the optional user-context block of an analysis response.
type UserAnalysis struct {
	ProfileFound bool     `json:"profile_found"`
	Context      *string  `json:"context"`
	RiskFactors  []string `json:"risk_factors"`
	Error        *string  `json:"error"`
	Source       *string  `json:"source"`
}

// JobAnalysis is the plain job analysis response.
type JobAnalysis struct {
	TrustScore        *int          `json:"trust_score"`
	Label             *string       `json:"label"`
	Reasons           []string      `json:"reasons"`
	RecommendedAction *string       `json:"recommended_action"`
	UserAnalysis      *UserAnalysis `json:"user_analysis"`
}

// EnhancedAnalysis is the job + company analysis response.
type EnhancedAnalysis struct {
	JobAnalysis
	CompanyVerified    *bool        `json:"company_verified"`
	CompanyTrustScore  *int         `json:"company_trust_score"`
	CompanyName        *string      `json:"company_name"`
	CompanyRiskFactors []string     `json:"company_risk_factors"`
	CombinedTrustScore *int         `json:"combined_trust_score"`
	CompanyInfo        *CompanyInfo `json:"company_info"`
}

// CompanyAnalysis is the company-only analysis response.
type CompanyAnalysis struct {
	Success              bool           `json:"success"`
	CompanyInfo          *CompanyInfo   `json:"company_info"`
	CompanyTrustScore    *int           `json:"company_trust_score"`
	LegitimacyIndicators map[string]any `json:"legitimacy_indicators"`
	RiskFactors          []string       `json:"risk_factors"`
	RecommendedAction    *string        `json:"recommended_action"`
}

// CompanyInfo is the descriptive company block shared by enhanced and
// company-only responses.
type CompanyInfo struct {
	Domain        *string         `json:"domain"`
	CompanyName   *string         `json:"company_name"`
	Description   *string         `json:"description"`
	Emails        []string        `json:"emails"`
	Phones        []string        `json:"phones"`
	SocialMedia   map[string]bool `json:"social_media"`
	Industry      *string         `json:"industry"`
	EmployeeCount *string         `json:"employee_count"`
	CompanyType   *string         `json:"company_type"`
	Revenue       *string         `json:"revenue"`
	Location      *string         `json:"location"`
	FoundingYear  *string         `json:"founding_year"`
	Tagline       *string         `json:"tagline"`
	SocialStats   []SocialStat    `json:"social_media_stats"`
	Timeline      []TimelineEvent `json:"timeline"`
}

// SocialStat is one social media presence entry.
type SocialStat struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Followers string `json:"followers"`
}

// TimelineEvent is one company milestone.
type TimelineEvent struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}

// HealthStatus is the health check response, reporting availability of the
// company-verification provider.
type HealthStatus struct {
	Status                string `json:"status"`
	CompanyVerificationUp *bool  `json:"company_verification_available"`
}

// errorBody is the failure payload sent with non-success statuses.
type errorBody struct {
	Detail string `json:"detail"`
}
