package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	result := types.NewMatchResult(0.906, 0.82, 0.90, 1.0, 1.0,
		[]string{"python", "sql"}, []string{"spark"}, []string{"docker"}, nil)

	printer.PrintMatchResult(result)

	output := buf.String()
	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "0.9060")
	assert.Contains(t, output, "Excellent Match")
	assert.Contains(t, output, "python, sql")
	assert.Contains(t, output, "spark")
	assert.Contains(t, output, "docker")
}

func TestPrintMatchResult_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintMatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankingResults(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	match := types.NewMatchResult(0.9, 0.9, 0.9, 0.9, 0.9, []string{"python"}, nil, nil, nil)
	results := []*types.RankingResult{
		{Rank: 1, CandidateID: "alice", Match: match, Percentile: 0.9, NormalizedScore: 1.0},
		{Rank: 2, CandidateID: "bob", Match: match, Percentile: 0.0, NormalizedScore: 0.0},
	}

	printer.PrintRankingResults("RANKED CANDIDATES", results)

	output := buf.String()
	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "Total ranked: 2")
	assert.Contains(t, output, "#1  alice")
	assert.Contains(t, output, "#2  bob")
	assert.Contains(t, output, "Top 10%")
}

func TestPrintRankingResults_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintRankingResults("RANKED", nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankingResults_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	match := types.NewMatchResult(0.5, 0.5, 0.5, 0.5, 0.5, nil, nil, nil, nil)
	results := make([]*types.RankingResult, 8)
	for i := range results {
		results[i] = &types.RankingResult{Rank: i + 1, CandidateID: "c", Match: match}
	}

	printer.PrintRankingResults("RANKED", results)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintShortlist(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	match := types.NewMatchResult(0.85, 0.8, 0.9, 1.0, 1.0, nil, nil, nil, nil)
	results := []*types.RankingResult{
		{Rank: 1, CandidateID: "alice", Match: match},
	}

	printer.PrintShortlist(results, 0.60)

	output := buf.String()
	assert.Contains(t, output, "SHORTLIST")
	assert.Contains(t, output, "alice")
	assert.Contains(t, output, "min score 0.60")
}

func TestPrintShortlist_EmptyShowsNotice(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintShortlist(nil, 0.90)

	assert.Contains(t, buf.String(), "NO CANDIDATES ABOVE THRESHOLD")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintStats(&ranking.Stats{
		N:          3,
		BestID:     "alice",
		BestScore:  0.9,
		WorstScore: 0.3,
		ScoreRange: 0.6,
		MeanScore:  0.6,
	})

	output := buf.String()
	assert.Contains(t, output, "POOL STATISTICS")
	assert.Contains(t, output, "alice")
	assert.Contains(t, output, "Pool size:   3")
}

func TestPrintStats_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintStats(&ranking.Stats{})

	assert.Empty(t, buf.String())
}
