package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

func TestMatcher_ExactMatches(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"python", "sql"},
		[]string{"python", "sql", "kubernetes", "spark"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.5, outcome.Score)
	assert.ElementsMatch(t, []string{"python", "sql"}, outcome.MatchedSkills)
	assert.ElementsMatch(t, []string{"kubernetes", "spark"}, outcome.MissingSkills)
	assert.Empty(t, outcome.BonusSkills)
}

func TestMatcher_ExactMatchIsCaseInsensitive(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"Python", "SQL"},
		[]string{"python", "sql"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outcome.Score)
	assert.Empty(t, outcome.MissingSkills)
}

func TestMatcher_NoRequiredSkills(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"python"},
		nil,
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outcome.Score)
	assert.Empty(t, outcome.MatchedSkills)
	assert.Empty(t, outcome.MissingSkills)
}

func TestMatcher_NoCandidateSkills(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		nil,
		[]string{"python", "sql"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.Score)
	assert.Empty(t, outcome.MatchedSkills)
	assert.ElementsMatch(t, []string{"python", "sql"}, outcome.MissingSkills)
}

func TestMatcher_ContainmentFallback(t *testing.T) {
	matcher := NewMatcher()

	// No embeddings: "apache spark" contains "spark"
	outcome, err := matcher.Match(
		[]string{"apache spark"},
		[]string{"spark"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outcome.Score)
	assert.Equal(t, []string{"spark"}, outcome.MatchedSkills)
}

func TestMatcher_ContainmentFallbackNoOverlap(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"java"},
		[]string{"python"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.Score)
	assert.Equal(t, []string{"python"}, outcome.MissingSkills)
}

func TestMatcher_EmbeddingSimilarityAboveThreshold(t *testing.T) {
	matcher := NewMatcher()

	candidateEmbeddings := map[string][]float64{
		"golang": {0.9, 0.1, 0.0},
	}
	jobEmbeddings := map[string][]float64{
		"go programming": {0.85, 0.15, 0.0},
	}

	outcome, err := matcher.Match(
		[]string{"golang"},
		[]string{"go programming"},
		nil,
		candidateEmbeddings,
		jobEmbeddings,
	)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outcome.Score)
	assert.Equal(t, []string{"go programming"}, outcome.MatchedSkills)
	assert.Greater(t, outcome.SkillSimilarities["go programming"], DefaultMatchThreshold)
}

func TestMatcher_EmbeddingSimilarityBelowThreshold(t *testing.T) {
	matcher := NewMatcher()

	candidateEmbeddings := map[string][]float64{
		"cooking": {1.0, 0.0, 0.0},
	}
	jobEmbeddings := map[string][]float64{
		"python": {0.0, 1.0, 0.0},
	}

	outcome, err := matcher.Match(
		[]string{"cooking"},
		[]string{"python"},
		nil,
		candidateEmbeddings,
		jobEmbeddings,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.Score)
	assert.Equal(t, []string{"python"}, outcome.MissingSkills)
}

func TestMatcher_ZeroNormEmbeddingScoresZero(t *testing.T) {
	matcher := NewMatcher()

	candidateEmbeddings := map[string][]float64{
		"golang": {0.0, 0.0, 0.0},
	}
	jobEmbeddings := map[string][]float64{
		"rust": {1.0, 0.0, 0.0},
	}

	outcome, err := matcher.Match(
		[]string{"golang"},
		[]string{"rust"},
		nil,
		candidateEmbeddings,
		jobEmbeddings,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.0, outcome.SkillSimilarities["rust"])
}

func TestMatcher_EmbeddingDimensionMismatch(t *testing.T) {
	matcher := NewMatcher()

	candidateEmbeddings := map[string][]float64{
		"golang": {1.0, 0.0},
	}
	jobEmbeddings := map[string][]float64{
		"rust": {1.0, 0.0, 0.0},
	}

	_, err := matcher.Match(
		[]string{"golang"},
		[]string{"rust"},
		nil,
		candidateEmbeddings,
		jobEmbeddings,
	)

	require.Error(t, err)
	var validationErr *scoring.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMatcher_BonusSkillsDoNotAffectScore(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"python", "docker"},
		[]string{"python"},
		[]string{"docker", "terraform"},
		nil, nil,
	)

	require.NoError(t, err)
	assert.Equal(t, 1.0, outcome.Score)
	assert.Equal(t, []string{"docker"}, outcome.BonusSkills)
	// Nice-to-have similarities are recorded too
	assert.Contains(t, outcome.SkillSimilarities, "terraform")
}

func TestMatcher_SimilaritiesRecordedForEveryRequiredSkill(t *testing.T) {
	matcher := NewMatcher()

	outcome, err := matcher.Match(
		[]string{"python"},
		[]string{"python", "sql", "kubernetes"},
		nil, nil, nil,
	)

	require.NoError(t, err)
	assert.Len(t, outcome.SkillSimilarities, 3)
	assert.Equal(t, 1.0, outcome.SkillSimilarities["python"])
	assert.Equal(t, 0.0, outcome.SkillSimilarities["sql"])
	assert.Equal(t, 0.0, outcome.SkillSimilarities["kubernetes"])
}

func TestMatcher_CustomThreshold(t *testing.T) {
	matcher := NewMatcherWithThreshold(0.9999)

	candidateEmbeddings := map[string][]float64{
		"golang": {0.9, 0.1, 0.0},
	}
	jobEmbeddings := map[string][]float64{
		"go programming": {0.85, 0.15, 0.0},
	}

	outcome, err := matcher.Match(
		[]string{"golang"},
		[]string{"go programming"},
		nil,
		candidateEmbeddings,
		jobEmbeddings,
	)

	require.NoError(t, err)
	// Similarity is high but below the stricter threshold
	assert.Equal(t, 0.0, outcome.Score)
	assert.Equal(t, []string{"go programming"}, outcome.MissingSkills)
}
