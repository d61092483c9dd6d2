// Package skills provides candidate-to-job skill matching with two-tier
// similarity resolution: exact string equality, then embedding cosine
// similarity, with a substring-containment fallback when embeddings are
// missing.
package skills

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/scoring"
)

// DefaultMatchThreshold is the minimum best-match similarity for a required
// skill to count as matched. Higher means stricter matching.
const DefaultMatchThreshold = 0.65

// Matcher matches candidate skills against a job's required and
// nice-to-have skill lists.
type Matcher struct {
	threshold float64
}

// Outcome is the full result of one skill-matching pass.
// MatchedSkills and MissingSkills exactly partition the required-skill list.
type Outcome struct {
	Score             float64            `json:"skills_score"`   // |matched| / |required|
	MatchedSkills     []string           `json:"matched_skills"` // required skills found
	MissingSkills     []string           `json:"missing_skills"` // required skills not found
	BonusSkills       []string           `json:"bonus_skills"`   // nice-to-have skills found
	SkillSimilarities map[string]float64 `json:"skill_similarities"`
}

// NewMatcher creates a Matcher with the default similarity threshold.
func NewMatcher() *Matcher {
	return &Matcher{threshold: DefaultMatchThreshold}
}

// NewMatcherWithThreshold creates a Matcher with a custom similarity threshold.
func NewMatcherWithThreshold(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Threshold returns the similarity threshold in use.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Match resolves every required and nice-to-have job skill against the
// candidate's skills. Each job skill's best similarity across all candidate
// skills is recorded in SkillSimilarities, keyed by the job-side name.
//
// Edge cases: an empty required list scores 1.0 with nothing missing; a
// candidate with no skills scores 0.0 with every required skill missing.
// A dimension mismatch between paired skill embeddings returns a validation
// error, since it indicates an upstream contract violation.
func (m *Matcher) Match(
	candidateSkills []string,
	requiredSkills []string,
	niceToHaveSkills []string,
	candidateEmbeddings map[string][]float64,
	jobEmbeddings map[string][]float64,
) (*Outcome, error) {
	if len(requiredSkills) == 0 {
		return emptyOutcome(1.0, nil), nil
	}
	if len(candidateSkills) == 0 {
		missing := make([]string, len(requiredSkills))
		copy(missing, requiredSkills)
		return emptyOutcome(0.0, missing), nil
	}

	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0)
	similarities := make(map[string]float64, len(requiredSkills)+len(niceToHaveSkills))

	for _, jobSkill := range requiredSkills {
		best, _, err := m.findBestMatch(jobSkill, candidateSkills, candidateEmbeddings, jobEmbeddings)
		if err != nil {
			return nil, err
		}
		similarities[jobSkill] = round4(best)

		if best >= m.threshold {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}

	score := round4(float64(len(matched)) / float64(len(requiredSkills)))

	// Nice-to-have matches never alter the score.
	bonus := make([]string, 0)
	for _, jobSkill := range niceToHaveSkills {
		best, _, err := m.findBestMatch(jobSkill, candidateSkills, candidateEmbeddings, jobEmbeddings)
		if err != nil {
			return nil, err
		}
		similarities[jobSkill] = round4(best)
		if best >= m.threshold {
			bonus = append(bonus, jobSkill)
		}
	}

	return &Outcome{
		Score:             score,
		MatchedSkills:     matched,
		MissingSkills:     missing,
		BonusSkills:       bonus,
		SkillSimilarities: similarities,
	}, nil
}

// findBestMatch resolves the best candidate skill for one job skill.
// Exact case-insensitive equality short-circuits at 1.0; otherwise cosine
// similarity between embeddings when both exist, else the substring
// containment fallback. Returns the best score and matching candidate skill.
func (m *Matcher) findBestMatch(
	jobSkill string,
	candidateSkills []string,
	candidateEmbeddings map[string][]float64,
	jobEmbeddings map[string][]float64,
) (float64, string, error) {
	bestScore := 0.0
	bestSkill := ""

	jobEmb := jobEmbeddings[jobSkill]

	for _, candidateSkill := range candidateSkills {
		if strings.EqualFold(candidateSkill, jobSkill) {
			return 1.0, candidateSkill, nil
		}

		candidateEmb := candidateEmbeddings[candidateSkill]

		var score float64
		if jobEmb != nil && candidateEmb != nil {
			sim, err := cosineSimilarity(candidateEmb, jobEmb)
			if err != nil {
				return 0.0, "", err
			}
			score = sim
		} else {
			score = containmentScore(candidateSkill, jobSkill)
		}

		if score > bestScore {
			bestScore = score
			bestSkill = candidateSkill
		}
	}

	return bestScore, bestSkill, nil
}

// cosineSimilarity returns 0.0 for zero vectors: a degenerate skill
// embedding is treated as no semantic signal, not an error. A dimension
// mismatch is an upstream contract violation and fails validation.
func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0.0, &scoring.ValidationError{
			Message: fmt.Sprintf("skill embedding dimension mismatch: candidate=%d, job=%d", len(a), len(b)),
		}
	}

	dot := 0.0
	normA := 0.0
	normB := 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// containmentScore is the fallback when embeddings are unavailable:
// 1.0 when either skill name contains the other, 0.0 otherwise.
// "apache spark" vs "spark" matches; "python" vs "java" does not.
func containmentScore(skillA, skillB string) float64 {
	a := strings.ToLower(skillA)
	b := strings.ToLower(skillB)
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1.0
	}
	return 0.0
}

func emptyOutcome(score float64, missing []string) *Outcome {
	if missing == nil {
		missing = make([]string, 0)
	}
	return &Outcome{
		Score:             score,
		MatchedSkills:     make([]string, 0),
		MissingSkills:     missing,
		BonusSkills:       make([]string, 0),
		SkillSimilarities: make(map[string]float64),
	}
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
