// Package normalize converts raw upstream responses into the internal signal
// shapes. Absent optional fields become explicit unknowns (nil), never zero
// values, and upstream sentinel strings like "Unknown" are erased here so
// nothing downstream has to know about them.
package normalize

import (
	"strings"

	"github.com/jonathan/trustguard/internal/types"
	"github.com/jonathan/trustguard/internal/upstream"
)

// Job converts a plain job analysis response into a JobSignal. The score,
// label, reasons, and recommended action are contractually required; any of
// them missing is a malformed response.
func Job(raw *upstream.JobAnalysis) (*types.JobSignal, error) {
	const op = "job analysis"

	if raw == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "empty response"}
	}
	if raw.TrustScore == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "missing trust_score"}
	}
	if raw.Label == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "missing label"}
	}
	if raw.Reasons == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "missing reasons"}
	}
	if raw.RecommendedAction == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "missing recommended_action"}
	}

	return &types.JobSignal{
		Score:             clampScore(*raw.TrustScore),
		Label:             *raw.Label,
		Reasons:           raw.Reasons,
		RecommendedAction: *raw.RecommendedAction,
	}, nil
}

// UserContext converts the optional user-analysis block. Returns nil when the
// block is absent. When the service did not name its source, fallback (what
// the request actually carried) is used instead.
func UserContext(raw *upstream.UserAnalysis, fallback *types.ContextSource) *types.UserContextSignal {
	if raw == nil {
		return nil
	}

	signal := &types.UserContextSignal{
		ProfileFound:   raw.ProfileFound,
		ContextSummary: optText(raw.Context),
		RiskFactors:    raw.RiskFactors,
		Source:         fallback,
	}

	if raw.Source != nil {
		switch strings.ToLower(strings.TrimSpace(*raw.Source)) {
		case "profile_url", "linkedin", "linkedin_url":
			src := types.SourceProfileURL
			signal.Source = &src
		case "resume_file", "resume":
			src := types.SourceResume
			signal.Source = &src
		}
	}

	return signal
}

// CompanyFromEnhanced extracts the company signal from an enhanced response.
// Returns nil when the verifier contributed no score: a company signal without
// a score cannot participate in combining.
func CompanyFromEnhanced(raw *upstream.EnhancedAnalysis) *types.CompanySignal {
	if raw == nil || raw.CompanyTrustScore == nil {
		return nil
	}

	verified := false
	if raw.CompanyVerified != nil {
		verified = *raw.CompanyVerified
	}

	return &types.CompanySignal{
		Verified:    verified,
		Score:       clampScore(*raw.CompanyTrustScore),
		CompanyName: optText(raw.CompanyName),
		RiskFactors: raw.CompanyRiskFactors,
		Profile:     CompanyProfile(raw.CompanyInfo),
	}
}

// CompanyOnly converts a company-only analysis response into a CompanySignal.
// A response with success=false or no score is malformed: the service signals
// scrape failures through a non-success HTTP status, not through this flag.
func CompanyOnly(raw *upstream.CompanyAnalysis) (*types.CompanySignal, error) {
	const op = "company analysis"

	if raw == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "empty response"}
	}
	if raw.CompanyTrustScore == nil {
		return nil, &upstream.MalformedResponseError{Op: op, Message: "missing company_trust_score"}
	}

	return &types.CompanySignal{
		Verified:    raw.Success,
		Score:       clampScore(*raw.CompanyTrustScore),
		CompanyName: companyNameFromInfo(raw.CompanyInfo),
		RiskFactors: raw.RiskFactors,
		Profile:     CompanyProfile(raw.CompanyInfo),
	}, nil
}

// CompanyProfile converts the descriptive company block. Attributes the
// verifier filled with "Unknown" or "" arrive here as unknowns (nil): a
// sentinel is indistinguishable from real data everywhere except this
// boundary, so it must die here.
func CompanyProfile(info *upstream.CompanyInfo) *types.CompanyProfile {
	if info == nil {
		return nil
	}

	profile := &types.CompanyProfile{
		Domain:        optText(info.Domain),
		CompanyName:   optText(info.CompanyName),
		Description:   optText(info.Description),
		Emails:        info.Emails,
		Phones:        info.Phones,
		SocialMedia:   info.SocialMedia,
		Industry:      optText(info.Industry),
		EmployeeCount: optText(info.EmployeeCount),
		CompanyType:   optText(info.CompanyType),
		Revenue:       optText(info.Revenue),
		Location:      optText(info.Location),
		FoundingYear:  optText(info.FoundingYear),
		Tagline:       optText(info.Tagline),
	}

	for _, stat := range info.SocialStats {
		profile.SocialStats = append(profile.SocialStats, types.SocialMediaStat{
			Platform:  stat.Platform,
			URL:       stat.URL,
			Followers: stat.Followers,
		})
	}
	for _, event := range info.Timeline {
		profile.Timeline = append(profile.Timeline, types.TimelineEntry{
			Year:  event.Year,
			Event: event.Event,
		})
	}

	return profile
}

func companyNameFromInfo(info *upstream.CompanyInfo) *string {
	if info == nil {
		return nil
	}
	return optText(info.CompanyName)
}

// optText treats nil, blank, and the upstream "Unknown" sentinel as unknown.
func optText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" || strings.EqualFold(trimmed, "unknown") {
		return nil
	}
	return &trimmed
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
