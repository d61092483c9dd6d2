// Package ranking turns pools of match scores into sorted, ranked
// leaderboards with percentile and normalized-score context.
package ranking

import "math"

// NormalizeDetails holds the diagnostic breakdown of a normalization pass.
type NormalizeDetails struct {
	Normalized []float64 `json:"normalized"`
	Raw        []float64 `json:"raw"`
	MinScore   float64   `json:"min_score"`
	MaxScore   float64   `json:"max_score"`
	ScoreRange float64   `json:"score_range"`
	AllEqual   bool      `json:"all_equal"`
}

// Normalize applies min-max normalization to a pool of scores, preserving
// order and length. Degenerate pools resolve in the pool's favor: a single
// score and an all-equal pool both map to 1.0 (equally qualified, not
// collapsed to zero). An empty pool returns an empty slice.
func Normalize(scores []float64) []float64 {
	if len(scores) == 0 {
		return []float64{}
	}
	if len(scores) == 1 {
		return []float64{1.0}
	}

	minScore, maxScore := minMax(scores)
	if maxScore == minScore {
		normalized := make([]float64, len(scores))
		for i := range normalized {
			normalized[i] = 1.0
		}
		return normalized
	}

	scoreRange := maxScore - minScore
	normalized := make([]float64, len(scores))
	for i, score := range scores {
		normalized[i] = round4(clamp01((score - minScore) / scoreRange))
	}
	return normalized
}

// NormalizeWithDetails normalizes and returns the pool's min, max, range,
// and whether all scores were tied.
func NormalizeWithDetails(scores []float64) *NormalizeDetails {
	if len(scores) == 0 {
		return &NormalizeDetails{
			Normalized: []float64{},
			Raw:        []float64{},
			AllEqual:   true,
		}
	}

	minScore, maxScore := minMax(scores)
	raw := make([]float64, len(scores))
	copy(raw, scores)

	return &NormalizeDetails{
		Normalized: Normalize(scores),
		Raw:        raw,
		MinScore:   round4(minScore),
		MaxScore:   round4(maxScore),
		ScoreRange: round4(maxScore - minScore),
		AllEqual:   maxScore == minScore,
	}
}

func minMax(scores []float64) (float64, float64) {
	minScore := scores[0]
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}
	return minScore, maxScore
}

func clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	if x > 1.0 {
		return 1.0
	}
	return x
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
