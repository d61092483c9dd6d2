package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var shortlistCmd = &cobra.Command{
	Use:   "shortlist",
	Short: "Shortlist the best candidates for a job",
	Long:  "Ranks a candidate pool against a job profile, drops candidates below the minimum score and keeps the top N, producing a RankingResults JSON of the shortlist.",
	RunE:  runShortlist,
}

var (
	shortlistJob        string
	shortlistCandidates string
	shortlistOutput     string
	shortlistConfig     string
	shortlistTopN       int
	shortlistMinScore   float64
	shortlistVerbose    bool
)

func init() {
	shortlistCmd.Flags().StringVarP(&shortlistJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	shortlistCmd.Flags().StringVarP(&shortlistCandidates, "candidates", "c", "", "Path to input candidate pool JSON file (required)")
	shortlistCmd.Flags().StringVarP(&shortlistOutput, "out", "o", "", "Path to output RankingResults JSON file (required)")
	shortlistCmd.Flags().StringVar(&shortlistConfig, "config", "", "Path to optional engine config JSON file")
	shortlistCmd.Flags().IntVarP(&shortlistTopN, "top", "n", 0, "Maximum shortlist size (default from config)")
	shortlistCmd.Flags().Float64VarP(&shortlistMinScore, "min-score", "m", 0, "Minimum qualifying overall score (default from config)")
	shortlistCmd.Flags().BoolVarP(&shortlistVerbose, "verbose", "v", false, "Print a formatted shortlist summary")

	if err := shortlistCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := shortlistCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := shortlistCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(shortlistCmd)
}

func runShortlist(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	job, err := loadJob(shortlistJob)
	if err != nil {
		return err
	}

	pool, err := loadCandidatePool(shortlistCandidates)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(shortlistConfig)
	if err != nil {
		return err
	}

	topN := cfg.ShortlistTopN()
	if shortlistTopN > 0 {
		topN = shortlistTopN
	}
	minScore := cfg.ShortlistMinScore()
	if shortlistMinScore > 0 {
		minScore = shortlistMinScore
	}

	matcher, err := matching.NewEngine(cfg.EngineParams(), logger)
	if err != nil {
		return fmt.Errorf("failed to build matching engine: %w", err)
	}

	shortlisted := ranking.NewEngine(matcher, logger).ShortlistCandidates(job, pool, topN, minScore)

	if err := writeJSON(shortlisted, shortlistOutput, schemas.RankingResultsSchema); err != nil {
		return err
	}

	if shortlistVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintShortlist(shortlisted, minScore)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Shortlisted %d of %d candidates to %s\n", len(shortlisted), len(pool), shortlistOutput)

	return nil
}
