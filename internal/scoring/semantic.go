package scoring

import (
	"fmt"
	"math"
)

// cosineEpsilon guards the cosine denominator against zero vectors.
const cosineEpsilon = 1e-8

// SemanticScorer computes overall semantic similarity between a candidate
// profile embedding and a job profile embedding via cosine similarity,
// clamped to [MinScore, MaxScore].
type SemanticScorer struct {
	minScore float64
	maxScore float64
}

// SemanticDetails holds the diagnostic breakdown of a semantic score.
type SemanticDetails struct {
	Score         float64 `json:"score"`          // final clamped score
	RawScore      float64 `json:"raw_score"`      // raw cosine similarity, may be negative
	CandidateNorm float64 `json:"candidate_norm"` // L2 norm of the candidate embedding
	JobNorm       float64 `json:"job_norm"`       // L2 norm of the job embedding
	DotProduct    float64 `json:"dot_product"`
}

// NewSemanticScorer creates a SemanticScorer with the default [0, 1] clamp.
func NewSemanticScorer() *SemanticScorer {
	return &SemanticScorer{minScore: 0.0, maxScore: 1.0}
}

// NewSemanticScorerWithRange creates a SemanticScorer with a custom clamp range.
func NewSemanticScorerWithRange(minScore, maxScore float64) *SemanticScorer {
	return &SemanticScorer{minScore: minScore, maxScore: maxScore}
}

// Score computes the cosine similarity between two embeddings, clamped to the
// scorer's range. Returns a ValidationError when either vector is nil or
// empty, or when the dimensions differ.
func (s *SemanticScorer) Score(candidateEmbedding, jobEmbedding []float64) (float64, error) {
	if err := validateEmbeddings(candidateEmbedding, jobEmbedding); err != nil {
		return 0.0, err
	}

	raw := cosineWithEpsilon(candidateEmbedding, jobEmbedding)
	return round4(clamp(raw, s.minScore, s.maxScore)), nil
}

// ScoreWithDetails computes the similarity and returns the full diagnostic
// breakdown, including the raw unclamped score and both vector norms.
func (s *SemanticScorer) ScoreWithDetails(candidateEmbedding, jobEmbedding []float64) (*SemanticDetails, error) {
	if err := validateEmbeddings(candidateEmbedding, jobEmbedding); err != nil {
		return nil, err
	}

	candidateNorm := l2Norm(candidateEmbedding)
	jobNorm := l2Norm(jobEmbedding)
	dot := dotProduct(candidateEmbedding, jobEmbedding)
	raw := dot / (candidateNorm*jobNorm + cosineEpsilon)

	return &SemanticDetails{
		Score:         round4(clamp(raw, s.minScore, s.maxScore)),
		RawScore:      raw,
		CandidateNorm: candidateNorm,
		JobNorm:       jobNorm,
		DotProduct:    dot,
	}, nil
}

func validateEmbeddings(a, b []float64) error {
	if a == nil || b == nil {
		return &ValidationError{Message: "embeddings cannot be nil"}
	}
	if len(a) == 0 || len(b) == 0 {
		return &ValidationError{Message: "embeddings cannot be empty"}
	}
	if len(a) != len(b) {
		return &ValidationError{
			Message: fmt.Sprintf("embedding dimension mismatch: candidate=%d, job=%d", len(a), len(b)),
		}
	}
	return nil
}

func cosineWithEpsilon(a, b []float64) float64 {
	return dotProduct(a, b) / (l2Norm(a)*l2Norm(b) + cosineEpsilon)
}

func dotProduct(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func l2Norm(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

func clamp(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// round4 rounds to 4 decimal places, the precision used for all reported scores.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
