package scoring

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// weightSumEpsilon is the tolerance allowed when checking that weights sum to 1.0.
const weightSumEpsilon = 1e-6

// Weights holds the four named factor weights used by the Aggregator.
// The set must be complete and must sum to 1.0.
type Weights struct {
	Semantic   float64 `json:"semantic" validate:"gte=0,lte=1"`
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the default factor weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:   0.30,
		Skills:     0.40,
		Experience: 0.20,
		Education:  0.10,
	}
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.Semantic + w.Skills + w.Experience + w.Education
}

// Validate checks field ranges and that the weights sum to 1.0 (± epsilon).
func (w Weights) Validate() error {
	if err := validator.New().Struct(w); err != nil {
		return &WeightError{Message: "weight out of range", Cause: err}
	}
	if total := w.Sum(); math.Abs(total-1.0) > weightSumEpsilon {
		return &WeightError{
			Message: fmt.Sprintf("weights must sum to 1.0, got %.6f", total),
		}
	}
	return nil
}

// Aggregator combines the four sub-scores into one weighted overall score.
// Weight validation happens once at construction; a bad weight set is fatal.
type Aggregator struct {
	weights Weights
}

// Breakdown holds the per-factor weighted contributions of an aggregation.
type Breakdown struct {
	OverallScore       float64 `json:"overall_score"`
	SemanticScore      float64 `json:"semantic_score"` // input, clamped
	SkillsScore        float64 `json:"skills_score"`
	ExperienceScore    float64 `json:"experience_score"`
	EducationScore     float64 `json:"education_score"`
	WeightedSemantic   float64 `json:"weighted_semantic"`
	WeightedSkills     float64 `json:"weighted_skills"`
	WeightedExperience float64 `json:"weighted_experience"`
	WeightedEducation  float64 `json:"weighted_education"`
	Weights            Weights `json:"weights"`
}

// NewAggregator creates an Aggregator, validating the weight set.
func NewAggregator(weights Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights}, nil
}

// NewDefaultAggregator creates an Aggregator with the default weights.
func NewDefaultAggregator() *Aggregator {
	return &Aggregator{weights: DefaultWeights()}
}

// Weights returns the weight set in use.
func (a *Aggregator) Weights() Weights {
	return a.weights
}

// Aggregate clamps each sub-score to [0, 1], combines them as a weighted sum,
// and returns the result clamped to [0, 1] and rounded to 4 decimals.
func (a *Aggregator) Aggregate(semantic, skills, experience, education float64) float64 {
	semantic = clamp(semantic, 0.0, 1.0)
	skills = clamp(skills, 0.0, 1.0)
	experience = clamp(experience, 0.0, 1.0)
	education = clamp(education, 0.0, 1.0)

	overall := semantic*a.weights.Semantic +
		skills*a.weights.Skills +
		experience*a.weights.Experience +
		education*a.weights.Education

	return round4(clamp(overall, 0.0, 1.0))
}

// AggregateWithDetails aggregates and returns each weighted contribution
// alongside the total.
func (a *Aggregator) AggregateWithDetails(semantic, skills, experience, education float64) *Breakdown {
	semantic = clamp(semantic, 0.0, 1.0)
	skills = clamp(skills, 0.0, 1.0)
	experience = clamp(experience, 0.0, 1.0)
	education = clamp(education, 0.0, 1.0)

	weightedSemantic := semantic * a.weights.Semantic
	weightedSkills := skills * a.weights.Skills
	weightedExperience := experience * a.weights.Experience
	weightedEducation := education * a.weights.Education

	total := weightedSemantic + weightedSkills + weightedExperience + weightedEducation

	return &Breakdown{
		OverallScore:       round4(clamp(total, 0.0, 1.0)),
		SemanticScore:      semantic,
		SkillsScore:        skills,
		ExperienceScore:    experience,
		EducationScore:     education,
		WeightedSemantic:   round4(weightedSemantic),
		WeightedSkills:     round4(weightedSkills),
		WeightedExperience: round4(weightedExperience),
		WeightedEducation:  round4(weightedEducation),
		Weights:            a.weights,
	}
}
