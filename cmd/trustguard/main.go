// Package main provides the entry point for the TrustGuard CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trustguard",
	Short: "TrustGuard job posting trust analyzer",
	Long:  "TrustGuard aggregates job, company, and applicant-context risk signals into a single trust score with a ranked explanation, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
