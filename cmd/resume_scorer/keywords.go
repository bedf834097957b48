package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/parsing"
)

var (
	keywordsJobFile string
	keywordsJobURL  string
	keywordsConfig  string
	keywordsBrowser bool
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract required and preferred keywords from a job description",
	RunE:  runKeywords,
}

func init() {
	keywordsCmd.Flags().StringVar(&keywordsJobFile, "job", "", "Path to a job description text file")
	keywordsCmd.Flags().StringVar(&keywordsJobURL, "job-url", "", "URL of a job posting to fetch")
	keywordsCmd.Flags().StringVar(&keywordsConfig, "config", "", "Path to a scoring config JSON file (defaults built in)")
	keywordsCmd.Flags().BoolVar(&keywordsBrowser, "browser", false, "Render the fetched job posting with headless Chrome")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(_ *cobra.Command, _ []string) error {
	if (keywordsJobFile == "") == (keywordsJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	cfg, err := loadScoringConfig(keywordsConfig)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var text string
	if keywordsJobFile != "" {
		data, err := os.ReadFile(keywordsJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		text = string(data)
	} else {
		text, err = fetch.JobDescription(ctx, keywordsJobURL, &fetch.Options{UseBrowser: keywordsBrowser})
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
	}

	keywords := parsing.ExtractKeywords(text, cfg)
	out, err := json.MarshalIndent(keywords, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
