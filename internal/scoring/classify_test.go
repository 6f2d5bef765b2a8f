package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/trustguard/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		score         int
		expectedTier  types.RiskTier
		expectedLabel string
	}{
		{"Zero is danger", 0, types.TierDanger, LabelDanger},
		{"Top of danger band", 29, types.TierDanger, LabelDanger},
		{"Bottom of caution band", 30, types.TierCaution, LabelCaution},
		{"Mid caution", 45, types.TierCaution, LabelCaution},
		{"Top of caution band", 59, types.TierCaution, LabelCaution},
		{"Bottom of safe band", 60, types.TierSafe, LabelSafe},
		{"Mid safe", 85, types.TierSafe, LabelSafe},
		{"Hundred is safe", 100, types.TierSafe, LabelSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, label := Classify(tt.score)
			assert.Equal(t, tt.expectedTier, tier)
			assert.Equal(t, tt.expectedLabel, label)
		})
	}
}

func TestFallbackAction(t *testing.T) {
	assert.Equal(t, "Proceed with caution.", FallbackAction(61))
	assert.Equal(t, "Do NOT pay or share personal details.", FallbackAction(60))
	assert.Equal(t, "Do NOT pay or share personal details.", FallbackAction(10))
}
