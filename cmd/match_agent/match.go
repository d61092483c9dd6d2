package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one candidate against one job",
	Long:  "Runs the full matching pipeline for a single candidate/job pair and produces a MatchResult JSON with the overall score, per-factor breakdown and skill diagnostics.",
	RunE:  runMatch,
}

var (
	matchCandidate string
	matchJob       string
	matchOutput    string
	matchConfig    string
	matchVerbose   bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to optional engine config JSON file")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted result summary")

	if err := matchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	// 1. Load inputs
	candidate, err := loadCandidate(matchCandidate)
	if err != nil {
		return err
	}

	job, err := loadJob(matchJob)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(matchConfig)
	if err != nil {
		return err
	}

	// 2. Build the engine
	engine, err := matching.NewEngine(cfg.EngineParams(), logger)
	if err != nil {
		return fmt.Errorf("failed to build matching engine: %w", err)
	}

	// 3. Match
	result := engine.Match(candidate, job)

	// 4. Write output, validated against the schema
	if err := writeJSON(result, matchOutput, schemas.MatchResultSchema); err != nil {
		return err
	}

	if matchVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Match complete: %s -> %s\n", result.Summary(), matchOutput)

	return nil
}
