package ranking

import (
	"io"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Matcher scores one candidate against one job. The matching engine
// satisfies this; tests may substitute a stub.
type Matcher interface {
	Match(candidate *types.CandidateProfile, job *types.JobProfile) *types.MatchResult
}

// Stats summarizes one ranking run.
type Stats struct {
	N          int     `json:"n"`
	BestID     string  `json:"best_id"`
	BestScore  float64 `json:"best_score"`
	WorstScore float64 `json:"worst_score"`
	ScoreRange float64 `json:"score_range"`
	MeanScore  float64 `json:"mean_score"`
}

// Engine is the façade over the two symmetric pool-ranking operations:
// ranking jobs for one candidate and ranking candidates for one job.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	matcher Matcher
	logger  *slog.Logger
}

// NewEngine creates a ranking Engine. A nil logger discards diagnostics.
func NewEngine(matcher Matcher, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return &Engine{matcher: matcher, logger: logger}
}

// RankJobsForCandidate ranks a pool of jobs for one candidate, best fit
// first. The candidate identifier is left empty on every result. An empty
// pool returns an empty slice, not an error.
func (e *Engine) RankJobsForCandidate(candidate *types.CandidateProfile, jobs []Job) []*types.RankingResult {
	if len(jobs) == 0 {
		e.logger.Warn("RankJobsForCandidate called with empty job pool")
		return []*types.RankingResult{}
	}

	matches := scorePool(len(jobs), func(i int) *types.MatchResult {
		return e.matcher.Match(candidate, jobs[i].Profile)
	})

	raw := rawScores(matches)
	normalized := Normalize(raw)
	percentiles := Percentiles(raw)

	ranked := assemble(matches, func(i int, match *types.MatchResult) *types.RankingResult {
		id := memberID(jobs[i].ID, "job", i)
		return types.NewRankingResult("", id, match, percentiles[i], normalized[i])
	})

	e.logger.Info("ranked jobs for candidate",
		"pool", len(ranked),
		"best", ranked[0].JobID,
		"best_score", ranked[0].OverallScore(),
	)

	return ranked
}

// RankCandidatesForJob ranks a pool of candidates for one job, best fit
// first. The job identifier is left empty on every result. An empty pool
// returns an empty slice, not an error.
func (e *Engine) RankCandidatesForJob(job *types.JobProfile, candidates []Candidate) []*types.RankingResult {
	if len(candidates) == 0 {
		e.logger.Warn("RankCandidatesForJob called with empty candidate pool")
		return []*types.RankingResult{}
	}

	matches := scorePool(len(candidates), func(i int) *types.MatchResult {
		return e.matcher.Match(candidates[i].Profile, job)
	})

	raw := rawScores(matches)
	normalized := Normalize(raw)
	percentiles := Percentiles(raw)

	ranked := assemble(matches, func(i int, match *types.MatchResult) *types.RankingResult {
		id := memberID(candidates[i].ID, "candidate", i)
		return types.NewRankingResult(id, "", match, percentiles[i], normalized[i])
	})

	e.logger.Info("ranked candidates for job",
		"pool", len(ranked),
		"best", ranked[0].CandidateID,
		"best_score", ranked[0].OverallScore(),
	)

	return ranked
}

// ShortlistCandidates ranks candidates for a job, keeps those at or above
// minScore, and truncates to the first topN.
func (e *Engine) ShortlistCandidates(job *types.JobProfile, candidates []Candidate, topN int, minScore float64) []*types.RankingResult {
	ranked := e.RankCandidatesForJob(job, candidates)

	shortlist := make([]*types.RankingResult, 0, len(ranked))
	for _, result := range ranked {
		if result.OverallScore() >= minScore {
			shortlist = append(shortlist, result)
		}
	}
	if topN >= 0 && len(shortlist) > topN {
		shortlist = shortlist[:topN]
	}

	e.logger.Info("shortlist built",
		"pool", len(ranked),
		"qualified", len(shortlist),
		"top_n", topN,
		"min_score", minScore,
	)

	return shortlist
}

// ComputeStats summarizes a ranked result list.
func ComputeStats(ranked []*types.RankingResult) *Stats {
	if len(ranked) == 0 {
		return &Stats{}
	}

	best := ranked[0].OverallScore()
	worst := best
	sum := 0.0
	for _, result := range ranked {
		score := result.OverallScore()
		if score > best {
			best = score
		}
		if score < worst {
			worst = score
		}
		sum += score
	}

	return &Stats{
		N:          len(ranked),
		BestID:     ranked[0].MemberID(),
		BestScore:  round4(best),
		WorstScore: round4(worst),
		ScoreRange: round4(best - worst),
		MeanScore:  round4(sum / float64(len(ranked))),
	}
}
