package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/server"
)

var (
	servePort    int
	serveConfig  string
	serveBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes scoring endpoints. With
DATABASE_URL set, auth and resume persistence endpoints are enabled;
without it the server runs stateless scoring only.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a scoring config JSON file (defaults built in)")
	serveCmd.Flags().BoolVar(&serveBrowser, "browser", false, "Render fetched job postings with headless Chrome")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := server.Config{
		Port:              servePort,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ScoringConfigPath: serveConfig,
		FetchWithBrowser:  serveBrowser,
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
