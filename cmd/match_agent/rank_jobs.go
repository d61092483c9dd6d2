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

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank a pool of jobs for one candidate",
	Long:  "Scores a candidate profile against every job in a pool and produces a RankingResults JSON sorted best fit first, with ranks, percentiles and normalized scores.",
	RunE:  runRankJobs,
}

var (
	rankJobsCandidate string
	rankJobsJobs      string
	rankJobsOutput    string
	rankJobsConfig    string
	rankJobsVerbose   bool
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankJobsCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsJobs, "jobs", "j", "", "Path to input job pool JSON file (required)")
	rankJobsCmd.Flags().StringVarP(&rankJobsOutput, "out", "o", "", "Path to output RankingResults JSON file (required)")
	rankJobsCmd.Flags().StringVar(&rankJobsConfig, "config", "", "Path to optional engine config JSON file")
	rankJobsCmd.Flags().BoolVarP(&rankJobsVerbose, "verbose", "v", false, "Print a formatted ranking summary")

	if err := rankJobsCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := rankJobsCmd.MarkFlagRequired("jobs"); err != nil {
		panic(fmt.Sprintf("failed to mark jobs flag as required: %v", err))
	}
	if err := rankJobsCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	candidate, err := loadCandidate(rankJobsCandidate)
	if err != nil {
		return err
	}

	pool, err := loadJobPool(rankJobsJobs)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(rankJobsConfig)
	if err != nil {
		return err
	}

	matcher, err := matching.NewEngine(cfg.EngineParams(), logger)
	if err != nil {
		return fmt.Errorf("failed to build matching engine: %w", err)
	}

	ranked := ranking.NewEngine(matcher, logger).RankJobsForCandidate(candidate, pool)

	if err := writeJSON(ranked, rankJobsOutput, schemas.RankingResultsSchema); err != nil {
		return err
	}

	if rankJobsVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRankingResults("RANKED JOBS", ranked)
		printer.PrintStats(ranking.ComputeStats(ranked))
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d jobs to %s\n", len(ranked), rankJobsOutput)

	return nil
}
