package types

import "time"

// JobProfile represents a structured job posting with pre-computed embeddings.
// Like CandidateProfile, it is produced upstream and read-only to the engine.
type JobProfile struct {
	Version                 string               `json:"version"`
	Title                   string               `json:"title"`
	Company                 string               `json:"company,omitempty"`
	Location                string               `json:"location,omitempty"`
	RequiredSkills          []string             `json:"required_skills"`
	NiceToHaveSkills        []string             `json:"nice_to_have_skills"`
	RequiredExperienceYears float64              `json:"required_experience_years"` // 0 = no requirement
	RequiredEducation       string               `json:"required_education"`        // free text, may be empty
	JobEmbedding            []float64            `json:"job_embedding"`
	SkillEmbeddings         map[string][]float64 `json:"skill_embeddings"`
	CreatedAt               time.Time            `json:"created_at"`
}

// NewJobProfile constructs a JobProfile with fresh copies of all slices and maps.
func NewJobProfile(
	title string,
	requiredSkills []string,
	niceToHaveSkills []string,
	requiredExperienceYears float64,
	requiredEducation string,
	jobEmbedding []float64,
	skillEmbeddings map[string][]float64,
) *JobProfile {
	return &JobProfile{
		Version:                 SchemaVersion,
		Title:                   title,
		RequiredSkills:          copyStrings(requiredSkills),
		NiceToHaveSkills:        copyStrings(niceToHaveSkills),
		RequiredExperienceYears: requiredExperienceYears,
		RequiredEducation:       requiredEducation,
		JobEmbedding:            copyVector(jobEmbedding),
		SkillEmbeddings:         copyEmbeddings(skillEmbeddings),
		CreatedAt:               time.Now(),
	}
}
