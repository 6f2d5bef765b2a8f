package types

// RiskTier is one of three ordered risk classifications derived from the
// display score.
type RiskTier string

const (
	// TierDanger covers scores in [0,29].
	TierDanger RiskTier = "danger"
	// TierCaution covers scores in [30,59].
	TierCaution RiskTier = "caution"
	// TierSafe covers scores in [60,100].
	TierSafe RiskTier = "safe"
)

// AggregateResult is the single value exposed to presentation after a
// submission completes. It owns all derived fields and must not be mutated
// once the pipeline has produced it. JSON field names match what the web
// frontend already consumes (trust_score, label, reasons, recommended_action).
type AggregateResult struct {
	DisplayScore      int             `json:"trust_score"`
	RiskTier          RiskTier        `json:"risk_tier"`
	Label             string          `json:"label"`
	Reasons           []string        `json:"reasons"`
	RecommendedAction string          `json:"recommended_action"`
	CompanySummary    *CompanyProfile `json:"company_summary,omitempty"`
	JobScore          *int            `json:"job_score,omitempty"`
	CompanyScore      *int            `json:"company_score,omitempty"`
}
