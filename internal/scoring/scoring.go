package scoring

import "github.com/jonathan/resume-matcher/internal/types"

// Factor IDs used by the matching engine and the aggregator weights.
const (
	FactorSemantic   = "semantic"
	FactorSkills     = "skills"
	FactorExperience = "experience"
	FactorEducation  = "education"
)

// Scorer is a single scoring strategy over a (candidate, job) pair.
// The matching engine consumes scorers as an ordered collection rather than
// hard-wiring concrete calls, so weighted factors can be added or removed
// in one place.
type Scorer interface {
	ID() string
	Score(candidate *types.CandidateProfile, job *types.JobProfile) (float64, error)
}

// Factors returns the ordered scalar scoring strategies for the matching
// engine: semantic, experience, education. Skills matching is a separate
// collaborator because it produces skill diagnostics beyond a scalar score.
func Factors(semantic *SemanticScorer, experience *ExperienceScorer, education *EducationScorer) []Scorer {
	return []Scorer{
		semanticFactor{scorer: semantic},
		experienceFactor{scorer: experience},
		educationFactor{scorer: education},
	}
}

type semanticFactor struct {
	scorer *SemanticScorer
}

func (f semanticFactor) ID() string { return FactorSemantic }

func (f semanticFactor) Score(candidate *types.CandidateProfile, job *types.JobProfile) (float64, error) {
	return f.scorer.Score(candidate.ProfileEmbedding, job.JobEmbedding)
}

type experienceFactor struct {
	scorer *ExperienceScorer
}

func (f experienceFactor) ID() string { return FactorExperience }

func (f experienceFactor) Score(candidate *types.CandidateProfile, job *types.JobProfile) (float64, error) {
	return f.scorer.Score(candidate.ExperienceYears, job.RequiredExperienceYears), nil
}

type educationFactor struct {
	scorer *EducationScorer
}

func (f educationFactor) ID() string { return FactorEducation }

func (f educationFactor) Score(candidate *types.CandidateProfile, job *types.JobProfile) (float64, error) {
	return f.scorer.Score(candidate.Education, job.RequiredEducation), nil
}
