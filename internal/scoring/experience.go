package scoring

// DefaultPenaltyPerYear is the score deducted for each year the candidate
// falls below the job's experience requirement.
const DefaultPenaltyPerYear = 0.15

// ExperienceScorer scores candidate experience against a job requirement
// using a linear gap penalty floored at 0.
type ExperienceScorer struct {
	penaltyPerYear float64
}

// ExperienceDetails holds the diagnostic breakdown of an experience score.
type ExperienceDetails struct {
	Score            float64 `json:"score"`
	CandidateYears   float64 `json:"candidate_years"`
	RequiredYears    float64 `json:"required_years"`
	GapYears         float64 `json:"gap_years"`       // years below requirement, 0 if met
	PenaltyApplied   float64 `json:"penalty_applied"` // total penalty deducted
	MeetsRequirement bool    `json:"meets_requirement"`
}

// NewExperienceScorer creates an ExperienceScorer with the default penalty.
func NewExperienceScorer() *ExperienceScorer {
	return &ExperienceScorer{penaltyPerYear: DefaultPenaltyPerYear}
}

// NewExperienceScorerWithPenalty creates an ExperienceScorer with a custom
// per-year penalty. Higher means stricter experience matching.
func NewExperienceScorerWithPenalty(penaltyPerYear float64) *ExperienceScorer {
	return &ExperienceScorer{penaltyPerYear: penaltyPerYear}
}

// Score returns 1.0 when the job has no requirement or the candidate meets
// it, otherwise 1.0 minus the per-year penalty for each missing year,
// floored at 0.0. Negative inputs are treated as 0.
func (s *ExperienceScorer) Score(candidateYears, requiredYears float64) float64 {
	candidateYears = max(0.0, candidateYears)
	requiredYears = max(0.0, requiredYears)

	if requiredYears == 0.0 {
		return 1.0
	}
	if candidateYears >= requiredYears {
		return 1.0
	}

	gap := requiredYears - candidateYears
	score := 1.0 - gap*s.penaltyPerYear
	return max(0.0, round4(score))
}

// ScoreWithDetails scores and returns the full diagnostic breakdown.
func (s *ExperienceScorer) ScoreWithDetails(candidateYears, requiredYears float64) *ExperienceDetails {
	candidateYears = max(0.0, candidateYears)
	requiredYears = max(0.0, requiredYears)
	gap := max(0.0, requiredYears-candidateYears)

	return &ExperienceDetails{
		Score:            s.Score(candidateYears, requiredYears),
		CandidateYears:   candidateYears,
		RequiredYears:    requiredYears,
		GapYears:         gap,
		PenaltyApplied:   round4(gap * s.penaltyPerYear),
		MeetsRequirement: candidateYears >= requiredYears,
	}
}
