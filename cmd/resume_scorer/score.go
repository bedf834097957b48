package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/parsing"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	scoreResumeFile string
	scoreLevel      string
	scoreMode       string
	scoreJobFile    string
	scoreJobURL     string
	scoreConfig     string
	scoreJSON       bool
	scoreBrowser    bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume JSON file",
	Long: `Score a structured resume JSON file. Provide a job description
with --job or --job-url to enable keyword matching and ats_simulation
mode; without one, ats_simulation degrades to quality_coach.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreLevel, "level", "", "Experience level: beginner, intermediary, senior")
	scoreCmd.Flags().StringVar(&scoreMode, "mode", "", "Scoring mode: ats_simulation or quality_coach")
	scoreCmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to a job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of a job posting to fetch")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to a scoring config JSON file (defaults built in)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the raw ScoreResult JSON")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Render the fetched job posting with headless Chrome")
	_ = scoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if scoreJobFile != "" && scoreJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	scoringCfg, err := loadScoringConfig(scoreConfig)
	if err != nil {
		return err
	}

	engine, err := scoring.NewEngine(scoringCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scoring engine: %w", err)
	}

	resume, err := readResumeFile(scoreResumeFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	keywords, err := resolveJobKeywords(ctx, scoringCfg)
	if err != nil {
		return err
	}

	result, err := engine.Score(ctx, scoring.Request{
		Resume:   resume,
		Level:    types.ParseLevel(scoreLevel),
		Mode:     types.ParseMode(scoreMode),
		Keywords: keywords,
	})
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintScoreResult(result)
	return nil
}

func loadScoringConfig(path string) (*config.ScoringConfig, error) {
	if path == "" {
		return config.DefaultScoringConfig()
	}
	return config.LoadScoringConfig(path)
}

func readResumeFile(path string) (*types.ResumeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var resume types.ResumeData
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

// resolveJobKeywords loads the job description from --job or --job-url
// and extracts keywords. Returns nil when neither flag is set.
func resolveJobKeywords(ctx context.Context, cfg *config.ScoringConfig) (*types.JobKeywords, error) {
	var text string
	switch {
	case scoreJobFile != "":
		data, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description file: %w", err)
		}
		text = string(data)
	case scoreJobURL != "":
		fetched, err := fetch.JobDescription(ctx, scoreJobURL, &fetch.Options{UseBrowser: scoreBrowser})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job description: %w", err)
		}
		text = fetched
	default:
		return nil, nil
	}
	return parsing.ExtractKeywords(text, cfg), nil
}
