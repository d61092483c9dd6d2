package types

import (
	"fmt"
	"time"
)

// Percentile thresholds for RankLabel
const (
	top10Percentile = 0.90
	top25Percentile = 0.75
	top50Percentile = 0.50
	top75Percentile = 0.25
)

// RankingResult wraps one MatchResult with pool-relative ranking context.
// Exactly one of CandidateID/JobID carries the varying pool member's
// identifier: ranking candidates for a job fills CandidateID and leaves
// JobID empty, ranking jobs for a candidate does the opposite.
type RankingResult struct {
	Rank        int    `json:"rank"` // 1-based position, 0 until assigned
	CandidateID string `json:"candidate_id,omitempty"`
	JobID       string `json:"job_id,omitempty"`

	Match           *MatchResult `json:"match"`
	Percentile      float64      `json:"percentile"`       // fraction of pool scoring strictly below
	NormalizedScore float64      `json:"normalized_score"` // min-max within the pool

	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRankingResult constructs an unranked RankingResult (Rank = 0).
func NewRankingResult(candidateID, jobID string, match *MatchResult, percentile, normalizedScore float64) *RankingResult {
	return &RankingResult{
		CandidateID:     candidateID,
		JobID:           jobID,
		Match:           match,
		Percentile:      percentile,
		NormalizedScore: normalizedScore,
		Version:         SchemaVersion,
		CreatedAt:       time.Now(),
	}
}

// OverallScore delegates to the wrapped MatchResult.
func (r *RankingResult) OverallScore() float64 {
	if r.Match == nil {
		return 0.0
	}
	return r.Match.OverallScore
}

// SkillsScore delegates to the wrapped MatchResult.
func (r *RankingResult) SkillsScore() float64 {
	if r.Match == nil {
		return 0.0
	}
	return r.Match.SkillsScore
}

// MatchedSkills delegates to the wrapped MatchResult.
func (r *RankingResult) MatchedSkills() []string {
	if r.Match == nil {
		return nil
	}
	return r.Match.MatchedSkills
}

// MissingSkills delegates to the wrapped MatchResult.
func (r *RankingResult) MissingSkills() []string {
	if r.Match == nil {
		return nil
	}
	return r.Match.MissingSkills
}

// BonusSkills delegates to the wrapped MatchResult.
func (r *RankingResult) BonusSkills() []string {
	if r.Match == nil {
		return nil
	}
	return r.Match.BonusSkills
}

// RankLabel returns a human-readable percentile label.
func (r *RankingResult) RankLabel() string {
	switch {
	case r.Percentile >= top10Percentile:
		return "Top 10%"
	case r.Percentile >= top25Percentile:
		return "Top 25%"
	case r.Percentile >= top50Percentile:
		return "Top 50%"
	case r.Percentile >= top75Percentile:
		return "Top 75%"
	default:
		return "Bottom 25%"
	}
}

// MatchLabel delegates the match quality label to the wrapped MatchResult.
func (r *RankingResult) MatchLabel() string {
	if r.Match == nil {
		return "No Match Data"
	}
	return r.Match.MatchLabel()
}

// MemberID returns whichever pool member identifier is set.
func (r *RankingResult) MemberID() string {
	if r.CandidateID != "" {
		return r.CandidateID
	}
	return r.JobID
}

// Summary returns a concise one-line summary:
//
//	#1 | alice | Score: 0.950 | Top 10% | Excellent Match
func (r *RankingResult) Summary() string {
	return fmt.Sprintf(
		"#%d | %s | Score: %.3f | %s | %s",
		r.Rank,
		r.MemberID(),
		r.OverallScore(),
		r.RankLabel(),
		r.MatchLabel(),
	)
}
