// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/trustguard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxReasonsToShow is the default number of reasons to display
	maxReasonsToShow = 8
	// meterWidth is the width of the score meter in characters
	meterWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of an aggregate result.
func (p *Printer) PrintResult(result *types.AggregateResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d/100  %s\n", result.DisplayScore, scoreMeter(result.DisplayScore)))
	sb.WriteString(fmt.Sprintf("Tier:     %s\n", tierName(result.RiskTier)))
	sb.WriteString(fmt.Sprintf("Label:    %s\n", result.Label))
	if result.JobScore != nil {
		sb.WriteString(fmt.Sprintf("Job:      %d/100\n", *result.JobScore))
	}
	if result.CompanyScore != nil {
		sb.WriteString(fmt.Sprintf("Company:  %d/100\n", *result.CompanyScore))
	}
	sb.WriteString("\n")

	if len(result.Reasons) > 0 {
		sb.WriteString("Findings:\n")
		count := min(len(result.Reasons), maxReasonsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Reasons[i]))
		}
		if len(result.Reasons) > maxReasonsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Reasons)-maxReasonsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Action:   %s", result.RecommendedAction))

	p.printBox("TRUST ANALYSIS", sb.String())
}

// PrintCompanyProfile outputs the known attributes of a company profile,
// skipping everything that is unknown.
func (p *Printer) PrintCompanyProfile(profile *types.CompanyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	appendKnown := func(name string, value *string) {
		if value != nil {
			sb.WriteString(fmt.Sprintf("%-10s %s\n", name+":", *value))
		}
	}

	appendKnown("Name", profile.CompanyName)
	appendKnown("Domain", profile.Domain)
	appendKnown("Industry", profile.Industry)
	appendKnown("Location", profile.Location)
	appendKnown("Founded", profile.FoundingYear)
	appendKnown("Employees", profile.EmployeeCount)
	appendKnown("Revenue", profile.Revenue)
	appendKnown("Type", profile.CompanyType)
	appendKnown("Tagline", profile.Tagline)

	if len(profile.Timeline) > 0 {
		sb.WriteString("\nTimeline:\n")
		for _, entry := range profile.Timeline {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", entry.Year, entry.Event))
		}
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "(no verified company details)"
	}

	p.printBox("COMPANY PROFILE", content)
}

// scoreMeter renders a fixed-width bar proportional to the score.
func scoreMeter(score int) string {
	filled := score * meterWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled) + "]"
}

func tierName(tier types.RiskTier) string {
	switch tier {
	case types.TierSafe:
		return "Safe"
	case types.TierCaution:
		return "Caution"
	case types.TierDanger:
		return "Danger"
	default:
		return string(tier)
	}
}
