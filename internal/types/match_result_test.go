package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatchResult_CopiesInputs(t *testing.T) {
	matched := []string{"python"}
	similarities := map[string]float64{"python": 1.0}

	result := NewMatchResult(0.9, 0.9, 1.0, 1.0, 1.0, matched, nil, nil, similarities)

	matched[0] = "mutated"
	similarities["python"] = 0.0

	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Equal(t, 1.0, result.SkillSimilarities["python"])
}

func TestNewMatchResult_NilInputsBecomeEmpty(t *testing.T) {
	result := NewMatchResult(0.5, 0.5, 0.5, 0.5, 0.5, nil, nil, nil, nil)

	assert.NotNil(t, result.MatchedSkills)
	assert.NotNil(t, result.MissingSkills)
	assert.NotNil(t, result.BonusSkills)
	assert.NotNil(t, result.SkillSimilarities)
	assert.Empty(t, result.MatchedSkills)
}

func TestNewMatchResult_SetsVersionAndTimestamp(t *testing.T) {
	result := NewMatchResult(0.5, 0.5, 0.5, 0.5, 0.5, nil, nil, nil, nil)

	assert.Equal(t, SchemaVersion, result.Version)
	assert.False(t, result.CreatedAt.IsZero())
}

func TestMatchResult_MatchLabels(t *testing.T) {
	assert.Equal(t, "Excellent Match", (&MatchResult{OverallScore: 0.85}).MatchLabel())
	assert.Equal(t, "Excellent Match", (&MatchResult{OverallScore: 0.80}).MatchLabel())
	assert.Equal(t, "Good Match", (&MatchResult{OverallScore: 0.70}).MatchLabel())
	assert.Equal(t, "Partial Match", (&MatchResult{OverallScore: 0.55}).MatchLabel())
	assert.Equal(t, "Weak Match", (&MatchResult{OverallScore: 0.40}).MatchLabel())
	assert.Equal(t, "Poor Match", (&MatchResult{OverallScore: 0.10}).MatchLabel())
}

func TestMatchResult_IsStrongMatch(t *testing.T) {
	result := &MatchResult{OverallScore: 0.75}

	assert.True(t, result.IsStrongMatch(DefaultStrongMatchThreshold))
	assert.True(t, result.IsStrongMatch(0.70))
	assert.False(t, result.IsStrongMatch(0.80))
}

func TestMatchResult_SkillsCoverage(t *testing.T) {
	result := &MatchResult{
		MatchedSkills: []string{"python", "sql"},
		MissingSkills: []string{"kubernetes", "spark"},
	}

	assert.Equal(t, 0.5, result.SkillsCoverage())
}

func TestMatchResult_SkillsCoverageNoRequirements(t *testing.T) {
	result := &MatchResult{}

	assert.Equal(t, 1.0, result.SkillsCoverage())
}

func TestMatchResult_Summary(t *testing.T) {
	result := &MatchResult{
		OverallScore:    0.906,
		ExperienceScore: 1.0,
		EducationScore:  0.8,
		MatchedSkills:   []string{"python", "sql"},
		MissingSkills:   []string{"spark"},
	}

	assert.Equal(t, "[Excellent Match] Score: 0.906 | Skills: 2/3 | Exp: 1.00 | Edu: 0.80", result.Summary())
}
