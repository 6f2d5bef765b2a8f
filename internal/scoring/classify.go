package scoring

import "github.com/jonathan/trustguard/internal/types"

// Tier transition points. Bands are inclusive on their lower bound and
// partition [0,100] exactly: [60,100] safe, [30,59] caution, [0,29] danger.
const (
	safeThreshold    = 60
	cautionThreshold = 30
)

// Labels for each tier.
const (
	LabelSafe    = "Likely Legitimate"
	LabelCaution = "Proceed with Caution"
	LabelDanger  = "High Risk"
)

// Classify maps a display score to its risk tier and label.
func Classify(score int) (types.RiskTier, string) {
	switch {
	case score >= safeThreshold:
		return types.TierSafe, LabelSafe
	case score >= cautionThreshold:
		return types.TierCaution, LabelCaution
	default:
		return types.TierDanger, LabelDanger
	}
}

// FallbackAction returns the recommended action used when the upstream
// analyzer did not supply one.
func FallbackAction(score int) string {
	if score > safeThreshold {
		return "Proceed with caution."
	}
	return "Do NOT pay or share personal details."
}
