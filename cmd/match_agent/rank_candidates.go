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

var rankCandidatesCmd = &cobra.Command{
	Use:   "rank-candidates",
	Short: "Rank a pool of candidates against one job",
	Long:  "Scores every candidate in a pool against a job profile and produces a RankingResults JSON sorted best fit first, with ranks, percentiles and normalized scores.",
	RunE:  runRankCandidates,
}

var (
	rankCandidatesJob        string
	rankCandidatesCandidates string
	rankCandidatesOutput     string
	rankCandidatesConfig     string
	rankCandidatesVerbose    bool
)

func init() {
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesJob, "job", "j", "", "Path to input JobProfile JSON file (required)")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesCandidates, "candidates", "c", "", "Path to input candidate pool JSON file (required)")
	rankCandidatesCmd.Flags().StringVarP(&rankCandidatesOutput, "out", "o", "", "Path to output RankingResults JSON file (required)")
	rankCandidatesCmd.Flags().StringVar(&rankCandidatesConfig, "config", "", "Path to optional engine config JSON file")
	rankCandidatesCmd.Flags().BoolVarP(&rankCandidatesVerbose, "verbose", "v", false, "Print a formatted ranking summary")

	if err := rankCandidatesCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankCandidatesCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCandidatesCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCandidatesCmd)
}

func runRankCandidates(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	job, err := loadJob(rankCandidatesJob)
	if err != nil {
		return err
	}

	pool, err := loadCandidatePool(rankCandidatesCandidates)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(rankCandidatesConfig)
	if err != nil {
		return err
	}

	matcher, err := matching.NewEngine(cfg.EngineParams(), logger)
	if err != nil {
		return fmt.Errorf("failed to build matching engine: %w", err)
	}

	ranked := ranking.NewEngine(matcher, logger).RankCandidatesForJob(job, pool)

	if err := writeJSON(ranked, rankCandidatesOutput, schemas.RankingResultsSchema); err != nil {
		return err
	}

	if rankCandidatesVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRankingResults("RANKED CANDIDATES", ranked)
		printer.PrintStats(ranking.ComputeStats(ranked))
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(ranked), rankCandidatesOutput)

	return nil
}
