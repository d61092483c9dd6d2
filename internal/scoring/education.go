package scoring

import "strings"

const (
	// PenaltyPerLevel is the score deducted per education level below the requirement.
	PenaltyPerLevel = 0.20

	// UnknownEducationScore is the partial credit given when the candidate's
	// education text is empty or unrecognized. Note the gap penalty below is
	// floored at 0.0, not at this constant: a recognized but very low level
	// can score lower than an unknown one.
	UnknownEducationScore = 0.30
)

// educationLevels maps ordinal levels to their keyword substrings,
// checked highest level first. First matching level wins.
var educationLevels = []struct {
	level    int
	keywords []string
}{
	{5, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{4, []string{"master", "msc", "m.s.", "m.s ", " ms ", "mba", "m.eng", "m.tech"}},
	{3, []string{"bachelor", "bsc", "b.s.", "b.s ", "bs ", "b.eng", "b.tech", "undergraduate", "college degree"}},
	{2, []string{"associate", "a.s.", "a.a."}},
	{1, []string{"high school", "secondary school", "ged", "hsc", "secondary"}},
}

var educationLabels = map[int]string{
	0: "Unknown",
	1: "High School",
	2: "Associate",
	3: "Bachelor",
	4: "Master",
	5: "PhD",
}

// EducationScorer scores candidate education against a job requirement by
// mapping free-text descriptions to ordinal levels 0-5.
type EducationScorer struct{}

// EducationDetails holds the diagnostic breakdown of an education score.
type EducationDetails struct {
	Score            float64 `json:"score"`
	CandidateLevel   int     `json:"candidate_level"`
	RequiredLevel    int     `json:"required_level"`
	CandidateLabel   string  `json:"candidate_label"`
	RequiredLabel    string  `json:"required_label"`
	GapLevels        int     `json:"gap_levels"`
	MeetsRequirement bool    `json:"meets_requirement"`
}

// NewEducationScorer creates an EducationScorer.
func NewEducationScorer() *EducationScorer {
	return &EducationScorer{}
}

// Score compares the detected ordinal levels of the two education strings.
// No requirement or a met requirement scores 1.0; unknown candidate education
// gets the fixed partial credit; otherwise a linear per-level penalty applies,
// floored at 0.0.
func (s *EducationScorer) Score(candidateEducation, requiredEducation string) float64 {
	requiredLevel := DetectEducationLevel(requiredEducation)
	candidateLevel := DetectEducationLevel(candidateEducation)

	if requiredLevel == 0 {
		return 1.0
	}
	if candidateLevel == 0 {
		return UnknownEducationScore
	}
	if candidateLevel >= requiredLevel {
		return 1.0
	}

	gap := requiredLevel - candidateLevel
	score := 1.0 - float64(gap)*PenaltyPerLevel
	return max(0.0, round4(score))
}

// ScoreWithDetails scores and returns the detected levels, labels, gap,
// and whether the requirement is met.
func (s *EducationScorer) ScoreWithDetails(candidateEducation, requiredEducation string) *EducationDetails {
	requiredLevel := DetectEducationLevel(requiredEducation)
	candidateLevel := DetectEducationLevel(candidateEducation)
	gap := max(0, requiredLevel-candidateLevel)

	return &EducationDetails{
		Score:            s.Score(candidateEducation, requiredEducation),
		CandidateLevel:   candidateLevel,
		RequiredLevel:    requiredLevel,
		CandidateLabel:   EducationLabel(candidateLevel),
		RequiredLabel:    EducationLabel(requiredLevel),
		GapLevels:        gap,
		MeetsRequirement: candidateLevel >= requiredLevel && requiredLevel > 0,
	}
}

// DetectEducationLevel maps free text to an ordinal education level 0-5.
// Levels are scanned highest first; the first keyword hit wins. Empty or
// unrecognized text returns 0.
func DetectEducationLevel(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	lower := strings.ToLower(text)
	for _, entry := range educationLevels {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.level
			}
		}
	}
	return 0
}

// EducationLabel returns the human-readable label for an ordinal level.
func EducationLabel(level int) string {
	if label, ok := educationLabels[level]; ok {
		return label
	}
	return "Unknown"
}
