package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/trustguard/internal/types"
)

func strPtr(s string) *string { return &s }

func TestPrintResult(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	jobScore := 80
	companyScore := 20
	printer.PrintResult(&types.AggregateResult{
		DisplayScore:      56,
		RiskTier:          types.TierCaution,
		Label:             "Proceed with Caution",
		Reasons:           []string{"Salary far above market", "Domain registered last month"},
		RecommendedAction: "Do NOT pay or share personal details.",
		JobScore:          &jobScore,
		CompanyScore:      &companyScore,
	})

	out := buf.String()
	assert.Contains(t, out, "TRUST ANALYSIS")
	assert.Contains(t, out, "56/100")
	assert.Contains(t, out, "Caution")
	assert.Contains(t, out, "Job:      80/100")
	assert.Contains(t, out, "Company:  20/100")
	assert.Contains(t, out, "Salary far above market")
	assert.Contains(t, out, "Do NOT pay")
}

func TestPrintResultTruncatesFindings(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	reasons := make([]string, 12)
	for i := range reasons {
		reasons[i] = strings.Repeat("r", 10)
	}
	printer.PrintResult(&types.AggregateResult{
		DisplayScore: 10,
		RiskTier:     types.TierDanger,
		Reasons:      reasons,
	})

	assert.Contains(t, buf.String(), "... and 4 more")
}

func TestPrintResultNil(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCompanyProfileSkipsUnknowns(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintCompanyProfile(&types.CompanyProfile{
		CompanyName:  strPtr("Acme Corp"),
		FoundingYear: strPtr("2003"),
		Timeline: []types.TimelineEntry{
			{Year: "2003", Event: "Founded"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "COMPANY PROFILE")
	assert.Contains(t, out, "Acme Corp")
	assert.Contains(t, out, "Founded")
	assert.NotContains(t, out, "Industry")
	assert.NotContains(t, out, "Revenue")
}

func TestPrintCompanyProfileAllUnknown(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintCompanyProfile(&types.CompanyProfile{})
	assert.Contains(t, buf.String(), "(no verified company details)")
}

func TestPrintCompanyProfileNil(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintCompanyProfile(nil)
	assert.Empty(t, buf.String())
}

func TestScoreMeter(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("░", 20)+"]", scoreMeter(0))
	assert.Equal(t, "["+strings.Repeat("█", 20)+"]", scoreMeter(100))
	assert.Equal(t, "["+strings.Repeat("█", 10)+strings.Repeat("░", 10)+"]", scoreMeter(50))
}
