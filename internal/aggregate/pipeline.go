// Package aggregate runs one submission end to end: dispatch, the single
// upstream call, normalization, scoring, and classification, producing the
// immutable AggregateResult that presentation consumes.
package aggregate

import (
	"context"
	"strings"

	"github.com/jonathan/trustguard/internal/dispatch"
	"github.com/jonathan/trustguard/internal/normalize"
	"github.com/jonathan/trustguard/internal/scoring"
	"github.com/jonathan/trustguard/internal/types"
	"github.com/jonathan/trustguard/internal/upstream"
)

// Analyzer is the part of the upstream client the pipeline needs.
type Analyzer interface {
	AnalyzeJob(ctx context.Context, req *types.AnalysisRequest) (*upstream.JobAnalysis, error)
	AnalyzeEnhanced(ctx context.Context, req *types.AnalysisRequest) (*upstream.EnhancedAnalysis, error)
	AnalyzeCompany(ctx context.Context, companyURL string) (*upstream.CompanyAnalysis, error)
}

// Pipeline turns an AnalysisRequest into an AggregateResult. It holds no
// per-submission state; signals live only for the duration of one Run.
type Pipeline struct {
	client Analyzer
}

// NewPipeline creates a pipeline over the given upstream client.
func NewPipeline(client Analyzer) *Pipeline {
	return &Pipeline{client: client}
}

// Run executes one submission. Validation failures surface before any
// outbound call; exactly one call is made on success.
func (p *Pipeline) Run(ctx context.Context, req *types.AnalysisRequest) (*types.AggregateResult, error) {
	// Sanitize pasted text before validating so length rules apply to what
	// is actually sent. The caller's request is never mutated.
	submission := *req
	submission.JobText = dispatch.SanitizeText(submission.JobText)

	variant, err := dispatch.Select(&submission)
	if err != nil {
		return nil, err
	}

	switch variant {
	case dispatch.VariantEnhanced:
		return p.runEnhanced(ctx, &submission)
	case dispatch.VariantCompanyOnly:
		return p.runCompanyOnly(ctx, &submission)
	default:
		return p.runJob(ctx, &submission)
	}
}

func (p *Pipeline) runJob(ctx context.Context, req *types.AnalysisRequest) (*types.AggregateResult, error) {
	raw, err := p.client.AnalyzeJob(ctx, req)
	if err != nil {
		return nil, err
	}

	job, err := normalize.Job(raw)
	if err != nil {
		return nil, err
	}
	user := normalize.UserContext(raw.UserAnalysis, contextSource(req))

	return assemble(job, nil, user), nil
}

func (p *Pipeline) runEnhanced(ctx context.Context, req *types.AnalysisRequest) (*types.AggregateResult, error) {
	raw, err := p.client.AnalyzeEnhanced(ctx, req)
	if err != nil {
		return nil, err
	}

	job, err := normalize.Job(&raw.JobAnalysis)
	if err != nil {
		return nil, err
	}
	company := normalize.CompanyFromEnhanced(raw)
	user := normalize.UserContext(raw.UserAnalysis, contextSource(req))

	return assemble(job, company, user), nil
}

func (p *Pipeline) runCompanyOnly(ctx context.Context, req *types.AnalysisRequest) (*types.AggregateResult, error) {
	raw, err := p.client.AnalyzeCompany(ctx, req.CompanyURL)
	if err != nil {
		return nil, err
	}

	company, err := normalize.CompanyOnly(raw)
	if err != nil {
		return nil, err
	}

	score := company.Score
	tier, label := scoring.Classify(score)

	action := ""
	if raw.RecommendedAction != nil {
		action = strings.TrimSpace(*raw.RecommendedAction)
	}
	if action == "" {
		action = scoring.FallbackAction(score)
	}

	companyScore := company.Score
	return &types.AggregateResult{
		DisplayScore:      score,
		RiskTier:          tier,
		Label:             label,
		Reasons:           scoring.RankReasons(nil, company.RiskFactors, nil),
		RecommendedAction: action,
		CompanySummary:    company.Profile,
		CompanyScore:      &companyScore,
	}, nil
}

// assemble combines job, optional company, and optional user-context signals
// into the final result. The upstream signals are not retained afterwards.
func assemble(job *types.JobSignal, company *types.CompanySignal, user *types.UserContextSignal) *types.AggregateResult {
	var companyScore *int
	var companyRisks []string
	var companySummary *types.CompanyProfile
	if company != nil {
		score := company.Score
		companyScore = &score
		companyRisks = company.RiskFactors
		companySummary = company.Profile
	}

	var userRisks []string
	if user != nil {
		userRisks = user.RiskFactors
	}

	displayScore := scoring.Combine(job.Score, companyScore)
	tier, label := scoring.Classify(displayScore)

	action := strings.TrimSpace(job.RecommendedAction)
	if action == "" {
		action = scoring.FallbackAction(displayScore)
	}

	jobScore := job.Score
	return &types.AggregateResult{
		DisplayScore:      displayScore,
		RiskTier:          tier,
		Label:             label,
		Reasons:           scoring.RankReasons(job.Reasons, companyRisks, userRisks),
		RecommendedAction: action,
		CompanySummary:    companySummary,
		JobScore:          &jobScore,
		CompanyScore:      companyScore,
	}
}

// contextSource reports which user-context artifact the request carried.
func contextSource(req *types.AnalysisRequest) *types.ContextSource {
	switch {
	case strings.TrimSpace(req.ProfileURL) != "":
		src := types.SourceProfileURL
		return &src
	case req.Resume != nil:
		src := types.SourceResume
		return &src
	default:
		return nil
	}
}
