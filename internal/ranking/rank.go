package ranking

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Candidate is one candidate pool member with its identifier.
type Candidate struct {
	ID      string                  `json:"candidate_id"`
	Profile *types.CandidateProfile `json:"profile"`
}

// Job is one job pool member with its identifier.
type Job struct {
	ID      string            `json:"job_id"`
	Profile *types.JobProfile `json:"profile"`
}

// scorePool runs the independent match computations for a pool, one worker
// per member up to GOMAXPROCS. Each worker writes only its own index, so the
// join at Wait is the only synchronization needed. Normalization, percentiles
// and the final sort all happen after this barrier.
func scorePool(n int, matchAt func(i int) *types.MatchResult) []*types.MatchResult {
	matches := make([]*types.MatchResult, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			matches[i] = matchAt(i)
			return nil
		})
	}
	// Workers never return errors; match failures are absorbed by the
	// matching engine's fallbacks.
	_ = g.Wait()

	return matches
}

// assemble builds unranked RankingResults from pool-ordered matches, then
// sorts descending by raw overall score (stable, so ties keep pool order)
// and assigns sequential 1-based ranks.
func assemble(matches []*types.MatchResult, buildResult func(i int, match *types.MatchResult) *types.RankingResult) []*types.RankingResult {
	results := make([]*types.RankingResult, len(matches))
	for i, match := range matches {
		results[i] = buildResult(i, match)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore() > results[j].OverallScore()
	})

	for position, result := range results {
		result.Rank = position + 1
	}

	return results
}

// rawScores extracts pool-ordered overall scores from matches.
func rawScores(matches []*types.MatchResult) []float64 {
	scores := make([]float64, len(matches))
	for i, match := range matches {
		scores[i] = match.OverallScore
	}
	return scores
}

// memberID returns the member's identifier, falling back to a positional
// name when the input omits one.
func memberID(id, kind string, i int) string {
	if id != "" {
		return id
	}
	return fmt.Sprintf("%s_%d", kind, i)
}
