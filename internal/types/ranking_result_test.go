package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRankingResult_Unranked(t *testing.T) {
	match := NewMatchResult(0.9, 0.9, 1.0, 1.0, 1.0, nil, nil, nil, nil)

	result := NewRankingResult("alice", "", match, 0.8, 1.0)

	assert.Equal(t, 0, result.Rank)
	assert.Equal(t, "alice", result.CandidateID)
	assert.Empty(t, result.JobID)
	assert.Equal(t, SchemaVersion, result.Version)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestRankingResult_DelegatesToMatch(t *testing.T) {
	match := NewMatchResult(0.9, 0.8, 0.7, 0.6, 0.5,
		[]string{"python"}, []string{"go"}, []string{"sql"}, nil)
	result := NewRankingResult("alice", "", match, 0.8, 1.0)

	assert.Equal(t, 0.9, result.OverallScore())
	assert.Equal(t, 0.7, result.SkillsScore())
	assert.Equal(t, []string{"python"}, result.MatchedSkills())
	assert.Equal(t, []string{"go"}, result.MissingSkills())
	assert.Equal(t, []string{"sql"}, result.BonusSkills())
	assert.Equal(t, "Excellent Match", result.MatchLabel())
}

func TestRankingResult_NilMatch(t *testing.T) {
	result := &RankingResult{}

	assert.Equal(t, 0.0, result.OverallScore())
	assert.Equal(t, "No Match Data", result.MatchLabel())
	assert.Nil(t, result.MatchedSkills())
}

func TestRankingResult_RankLabels(t *testing.T) {
	assert.Equal(t, "Top 10%", (&RankingResult{Percentile: 0.95}).RankLabel())
	assert.Equal(t, "Top 10%", (&RankingResult{Percentile: 0.90}).RankLabel())
	assert.Equal(t, "Top 25%", (&RankingResult{Percentile: 0.80}).RankLabel())
	assert.Equal(t, "Top 50%", (&RankingResult{Percentile: 0.60}).RankLabel())
	assert.Equal(t, "Top 75%", (&RankingResult{Percentile: 0.30}).RankLabel())
	assert.Equal(t, "Bottom 25%", (&RankingResult{Percentile: 0.10}).RankLabel())
}

func TestRankingResult_MemberID(t *testing.T) {
	assert.Equal(t, "alice", (&RankingResult{CandidateID: "alice"}).MemberID())
	assert.Equal(t, "job_42", (&RankingResult{JobID: "job_42"}).MemberID())
	assert.Empty(t, (&RankingResult{}).MemberID())
}

func TestRankingResult_Summary(t *testing.T) {
	match := NewMatchResult(0.95, 0.9, 1.0, 1.0, 1.0, nil, nil, nil, nil)
	result := NewRankingResult("alice", "", match, 0.92, 1.0)
	result.Rank = 1

	assert.Equal(t, "#1 | alice | Score: 0.950 | Top 10% | Excellent Match", result.Summary())
}
