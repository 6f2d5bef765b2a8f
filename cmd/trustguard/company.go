package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/trustguard/internal/aggregate"
	"github.com/jonathan/trustguard/internal/observability"
	"github.com/jonathan/trustguard/internal/types"
	"github.com/jonathan/trustguard/internal/upstream"
)

var (
	companyConfigPath string
	companyVerbose    bool
)

var companyCmd = &cobra.Command{
	Use:   "company <url>",
	Short: "Check a company website without a job posting",
	Long:  `Run company verification alone and print the company trust score and profile.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCompany,
}

func init() {
	companyCmd.Flags().StringVar(&companyConfigPath, "config", "", "Path to a JSON config file")
	companyCmd.Flags().BoolVar(&companyVerbose, "verbose", false, "Print the full company profile")
	rootCmd.AddCommand(companyCmd)
}

func runCompany(cmd *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig(companyConfigPath)
	if err != nil {
		return err
	}

	client := upstream.NewClient(cfg.UpstreamURL, cfg.Timeout())
	pipeline := aggregate.NewPipeline(client)

	result, err := pipeline.Run(cmd.Context(), &types.AnalysisRequest{CompanyURL: args[0]})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResult(result)
	if companyVerbose {
		printer.PrintCompanyProfile(result.CompanySummary)
	}

	if result.CompanyScore == nil {
		fmt.Fprintln(os.Stdout, "Company could not be verified.")
	}
	return nil
}
