package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/trustguard/internal/aggregate"
	"github.com/jonathan/trustguard/internal/config"
	"github.com/jonathan/trustguard/internal/dispatch"
	"github.com/jonathan/trustguard/internal/fetch"
	"github.com/jonathan/trustguard/internal/observability"
	"github.com/jonathan/trustguard/internal/types"
	"github.com/jonathan/trustguard/internal/upstream"
)

var (
	analyzeJobURL     string
	analyzeJobFile    string
	analyzeCompanyURL string
	analyzeProfileURL string
	analyzeResume     string
	analyzeConfigPath string
	analyzePrefetch   bool
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting for scam signals",
	Long: `Submit a job posting (URL or text file), optionally with a company URL and
a profile URL or resume file, and print the aggregated trust score.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to a file with the job posting text")
	analyzeCmd.Flags().StringVar(&analyzeCompanyURL, "company-url", "", "Company website URL for verification")
	analyzeCmd.Flags().StringVar(&analyzeProfileURL, "profile-url", "", "Your profile URL for fit analysis")
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to a resume file for fit analysis")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzePrefetch, "prefetch", false, "Fetch and extract the job posting locally before submitting")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered job boards")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed progress information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(analyzeConfigPath)
	if err != nil {
		return err
	}

	req := &types.AnalysisRequest{
		JobURL:     analyzeJobURL,
		CompanyURL: analyzeCompanyURL,
		ProfileURL: analyzeProfileURL,
	}

	if analyzeJobFile != "" {
		text, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		req.JobText = string(text)
	}

	if analyzeResume != "" {
		content, err := os.ReadFile(analyzeResume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		req.Resume = &types.ResumeArtifact{
			Filename: filepath.Base(analyzeResume),
			Content:  content,
		}
	}

	ctx := cmd.Context()

	if analyzePrefetch {
		if err := prefetch(ctx, req); err != nil {
			return err
		}
	}

	client := upstream.NewClient(cfg.UpstreamURL, cfg.Timeout())
	pipeline := aggregate.NewPipeline(client)

	result, err := pipeline.Run(ctx, req)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)
	if analyzeVerbose {
		printer.PrintCompanyProfile(result.CompanySummary)
	}
	return nil
}

// prefetch extracts the job posting text locally and checks the company site
// is reachable, concurrently, before paying for an upstream analysis.
func prefetch(ctx context.Context, req *types.AnalysisRequest) error {
	g, gCtx := errgroup.WithContext(ctx)

	fetcher := fetch.NewCachedFetcher(nil, 0)

	if req.JobURL != "" && req.JobText == "" {
		g.Go(func() error {
			text, err := fetch.JobTextWithFallback(gCtx, req.JobURL, nil, analyzeUseBrowser, analyzeVerbose)
			if err != nil {
				return fmt.Errorf("job posting prefetch failed: %w", err)
			}
			req.JobText = dispatch.SanitizeText(text)
			return nil
		})
	}

	if req.CompanyURL != "" {
		g.Go(func() error {
			if _, err := fetcher.Fetch(gCtx, req.CompanyURL); err != nil {
				return fmt.Errorf("company website unreachable: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func loadCLIConfig(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
