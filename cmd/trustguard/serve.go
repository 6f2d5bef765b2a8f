package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/trustguard/internal/config"
	"github.com/jonathan/trustguard/internal/server"
)

var (
	servePort     int
	serveUpstream string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the trust analysis pipeline to the web frontend.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8090, or PORT env)")
	serveCmd.Flags().StringVar(&serveUpstream, "upstream", "", "Base URL of the analysis service (default UPSTREAM_URL env)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:        servePort,
		UpstreamURL: serveUpstream,
	}
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8090})
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		UpstreamURL:     cfg.UpstreamURL,
		UpstreamTimeout: cfg.Timeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
