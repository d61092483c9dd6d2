package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceScorer_MeetsRequirement(t *testing.T) {
	scorer := NewExperienceScorer()

	assert.Equal(t, 1.0, scorer.Score(7.0, 5.0))
}

func TestExperienceScorer_ExactlyMeetsRequirement(t *testing.T) {
	scorer := NewExperienceScorer()

	assert.Equal(t, 1.0, scorer.Score(5.0, 5.0))
}

func TestExperienceScorer_TwoYearGap(t *testing.T) {
	scorer := NewExperienceScorer()

	// 1.0 - 2*0.15 = 0.70
	assert.Equal(t, 0.70, scorer.Score(3.0, 5.0))
}

func TestExperienceScorer_FiveYearGap(t *testing.T) {
	scorer := NewExperienceScorer()

	// 1.0 - 5*0.15 = 0.25
	assert.Equal(t, 0.25, scorer.Score(0.0, 5.0))
}

func TestExperienceScorer_LargeGapFlooredAtZero(t *testing.T) {
	scorer := NewExperienceScorer()

	assert.Equal(t, 0.0, scorer.Score(0.0, 10.0))
}

func TestExperienceScorer_NoRequirement(t *testing.T) {
	scorer := NewExperienceScorer()

	assert.Equal(t, 1.0, scorer.Score(0.0, 0.0))
	assert.Equal(t, 1.0, scorer.Score(3.0, 0.0))
}

func TestExperienceScorer_NegativeInputsClamped(t *testing.T) {
	scorer := NewExperienceScorer()

	// Negative years are treated as zero
	assert.Equal(t, 1.0, scorer.Score(-2.0, -1.0))
	assert.Equal(t, 0.25, scorer.Score(-2.0, 5.0))
}

func TestExperienceScorer_CustomPenalty(t *testing.T) {
	scorer := NewExperienceScorerWithPenalty(0.25)

	// 1.0 - 2*0.25 = 0.50
	assert.Equal(t, 0.50, scorer.Score(3.0, 5.0))
}

func TestExperienceScorer_FractionalGap(t *testing.T) {
	scorer := NewExperienceScorer()

	// 1.0 - 1.5*0.15 = 0.775
	assert.Equal(t, 0.775, scorer.Score(3.5, 5.0))
}

func TestExperienceScorer_WithDetails(t *testing.T) {
	scorer := NewExperienceScorer()

	details := scorer.ScoreWithDetails(3.0, 5.0)

	assert.Equal(t, 0.70, details.Score)
	assert.Equal(t, 2.0, details.GapYears)
	assert.Equal(t, 0.30, details.PenaltyApplied)
	assert.False(t, details.MeetsRequirement)
}
