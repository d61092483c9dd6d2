package types

import (
	"fmt"
	"time"
)

// SchemaVersion tags result records for forward compatibility.
const SchemaVersion = "1.0"

// Match quality thresholds for MatchLabel
const (
	excellentMatchThreshold = 0.80
	goodMatchThreshold      = 0.65
	partialMatchThreshold   = 0.50
	weakMatchThreshold      = 0.35

	// DefaultStrongMatchThreshold is the default cutoff for IsStrongMatch.
	DefaultStrongMatchThreshold = 0.75
)

// MatchResult is the complete result of matching one candidate against one job.
// All scores are in [0, 1]. Instances are value objects: created once per
// match call and never mutated afterwards.
type MatchResult struct {
	OverallScore    float64 `json:"overall_score"`
	SemanticScore   float64 `json:"semantic_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`

	MatchedSkills     []string           `json:"matched_skills"` // required skills the candidate has
	MissingSkills     []string           `json:"missing_skills"` // required skills the candidate lacks
	BonusSkills       []string           `json:"bonus_skills"`   // nice-to-have skills the candidate has
	SkillSimilarities map[string]float64 `json:"skill_similarities"`

	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMatchResult constructs a MatchResult with fresh copies of the skill lists
// and similarity map. Nil inputs become empty containers.
func NewMatchResult(
	overall, semantic, skills, experience, education float64,
	matchedSkills, missingSkills, bonusSkills []string,
	skillSimilarities map[string]float64,
) *MatchResult {
	similarities := make(map[string]float64, len(skillSimilarities))
	for skill, score := range skillSimilarities {
		similarities[skill] = score
	}

	return &MatchResult{
		OverallScore:      overall,
		SemanticScore:     semantic,
		SkillsScore:       skills,
		ExperienceScore:   experience,
		EducationScore:    education,
		MatchedSkills:     copyStrings(matchedSkills),
		MissingSkills:     copyStrings(missingSkills),
		BonusSkills:       copyStrings(bonusSkills),
		SkillSimilarities: similarities,
		Version:           SchemaVersion,
		CreatedAt:         time.Now(),
	}
}

// IsStrongMatch reports whether the overall score meets the given threshold.
func (r *MatchResult) IsStrongMatch(threshold float64) bool {
	return r.OverallScore >= threshold
}

// MatchLabel returns a human-readable label for the overall score.
func (r *MatchResult) MatchLabel() string {
	switch {
	case r.OverallScore >= excellentMatchThreshold:
		return "Excellent Match"
	case r.OverallScore >= goodMatchThreshold:
		return "Good Match"
	case r.OverallScore >= partialMatchThreshold:
		return "Partial Match"
	case r.OverallScore >= weakMatchThreshold:
		return "Weak Match"
	default:
		return "Poor Match"
	}
}

// SkillsCoverage returns the fraction of required skills covered.
// No requirements means full coverage.
func (r *MatchResult) SkillsCoverage() float64 {
	total := len(r.MatchedSkills) + len(r.MissingSkills)
	if total == 0 {
		return 1.0
	}
	return float64(len(r.MatchedSkills)) / float64(total)
}

// Summary returns a concise one-line summary of the match result.
func (r *MatchResult) Summary() string {
	totalSkills := len(r.MatchedSkills) + len(r.MissingSkills)
	return fmt.Sprintf(
		"[%s] Score: %.3f | Skills: %d/%d | Exp: %.2f | Edu: %.2f",
		r.MatchLabel(),
		r.OverallScore,
		len(r.MatchedSkills),
		totalSkills,
		r.ExperienceScore,
		r.EducationScore,
	)
}
