package ranking

// PercentileDetails holds the diagnostic breakdown of a percentile pass.
type PercentileDetails struct {
	Percentiles []float64 `json:"percentiles"`
	Raw         []float64 `json:"raw"`
	N           int       `json:"n"`
	TopScore    float64   `json:"top_score"`
	BottomScore float64   `json:"bottom_score"`
	HasTies     bool      `json:"has_ties"`
}

// Percentiles computes, for each score, the fraction of the pool scoring
// strictly below it, rounded to 4 decimals. Order is preserved and ties
// receive identical percentiles. A single-member pool gets [1.0]; an empty
// pool returns an empty slice.
func Percentiles(scores []float64) []float64 {
	if len(scores) == 0 {
		return []float64{}
	}
	if len(scores) == 1 {
		return []float64{1.0}
	}

	n := float64(len(scores))
	percentiles := make([]float64, len(scores))
	for i, score := range scores {
		below := 0
		for _, other := range scores {
			if other < score {
				below++
			}
		}
		percentiles[i] = round4(float64(below) / n)
	}
	return percentiles
}

// PercentilesWithDetails computes percentiles and pool diagnostics.
func PercentilesWithDetails(scores []float64) *PercentileDetails {
	if len(scores) == 0 {
		return &PercentileDetails{
			Percentiles: []float64{},
			Raw:         []float64{},
		}
	}

	raw := make([]float64, len(scores))
	copy(raw, scores)

	minScore, maxScore := minMax(scores)

	seen := make(map[float64]bool, len(scores))
	hasTies := false
	for _, s := range scores {
		if seen[s] {
			hasTies = true
			break
		}
		seen[s] = true
	}

	return &PercentileDetails{
		Percentiles: Percentiles(scores),
		Raw:         raw,
		N:           len(scores),
		TopScore:    round4(maxScore),
		BottomScore: round4(minScore),
		HasTies:     hasTies,
	}
}
