// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// EmbeddingDim is the default dimensionality of profile and skill embedding
// vectors produced by the upstream embedding pipeline (all-MiniLM-L6-v2).
// The engine only requires that paired vectors agree in dimension.
const EmbeddingDim = 384

// CandidateProfile represents a parsed candidate resume with pre-computed embeddings.
// Profiles are produced by the upstream parsing/embedding pipeline and are
// read-only to the matching engine.
type CandidateProfile struct {
	Version          string               `json:"version"`
	HardSkills       []string             `json:"hard_skills"`       // lowercase, deduplicated
	SoftSkills       []string             `json:"soft_skills"`       // lowercase, deduplicated
	Education        string               `json:"education"`         // free text, may be empty
	ExperienceYears  float64              `json:"experience_years"`  // total years, non-negative
	ProfileEmbedding []float64            `json:"profile_embedding"` // whole-profile vector
	SkillEmbeddings  map[string][]float64 `json:"skill_embeddings"`  // skill name -> vector
	CreatedAt        time.Time            `json:"created_at"`
}

// NewCandidateProfile constructs a CandidateProfile with fresh copies of all
// slices and maps, so no two profiles ever share a container.
func NewCandidateProfile(
	hardSkills []string,
	softSkills []string,
	education string,
	experienceYears float64,
	profileEmbedding []float64,
	skillEmbeddings map[string][]float64,
) *CandidateProfile {
	return &CandidateProfile{
		Version:          SchemaVersion,
		HardSkills:       copyStrings(hardSkills),
		SoftSkills:       copyStrings(softSkills),
		Education:        education,
		ExperienceYears:  experienceYears,
		ProfileEmbedding: copyVector(profileEmbedding),
		SkillEmbeddings:  copyEmbeddings(skillEmbeddings),
		CreatedAt:        time.Now(),
	}
}

func copyStrings(src []string) []string {
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

func copyVector(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

func copyEmbeddings(src map[string][]float64) map[string][]float64 {
	dst := make(map[string][]float64, len(src))
	for skill, vec := range src {
		dst[skill] = copyVector(vec)
	}
	return dst
}
