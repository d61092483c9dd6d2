// Package main provides the entry point for the candidate/job matching CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_agent",
	Short: "Candidate/Job Matching and Ranking Engine",
	Long:  "Scores candidate profiles against job postings across semantic, skills, experience and education factors, and ranks pools of candidates or jobs by overall fit.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
