package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/trustguard/internal/upstream"
)

var healthConfigPath string

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the analysis service is reachable",
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthConfigPath, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(healthConfigPath)
	if err != nil {
		return err
	}

	client := upstream.NewClient(cfg.UpstreamURL, cfg.Timeout())
	status, err := client.Health(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis service at %s is unreachable: %v\n", cfg.UpstreamURL, err)
		os.Exit(1)
	}

	fmt.Printf("Analysis service: %s\n", status.Status)
	switch {
	case status.CompanyVerificationUp == nil:
		fmt.Println("Company verification: unknown")
	case *status.CompanyVerificationUp:
		fmt.Println("Company verification: available")
	default:
		fmt.Println("Company verification: unavailable")
	}
	return nil
}
