package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// loadCandidate reads and parses a CandidateProfile JSON file.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate profile file %s: %w", path, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate profile JSON: %w", err)
	}

	return &profile, nil
}

// loadJob reads and parses a JobProfile JSON file.
func loadJob(path string) (*types.JobProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job profile file %s: %w", path, err)
	}

	var profile types.JobProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job profile JSON: %w", err)
	}

	return &profile, nil
}

// loadCandidatePool reads a JSON array of candidate pool members. Members
// without an identifier are assigned a generated one.
func loadCandidatePool(path string) ([]ranking.Candidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate pool file %s: %w", path, err)
	}

	var pool []ranking.Candidate
	if err := json.Unmarshal(content, &pool); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate pool JSON: %w", err)
	}

	for i := range pool {
		if pool[i].ID == "" {
			pool[i].ID = uuid.NewString()
		}
	}

	return pool, nil
}

// loadJobPool reads a JSON array of job pool members. Members without an
// identifier are assigned a generated one.
func loadJobPool(path string) ([]ranking.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job pool file %s: %w", path, err)
	}

	var pool []ranking.Job
	if err := json.Unmarshal(content, &pool); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job pool JSON: %w", err)
	}

	for i := range pool {
		if pool[i].ID == "" {
			pool[i].ID = uuid.NewString()
		}
	}

	return pool, nil
}

// loadConfig loads and validates the optional config file. An empty path
// yields an all-defaults config.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// writeJSON marshals v with indentation and writes it to outPath, creating
// parent directories as needed. When schemaRelPath resolves, the written
// output is validated against it; validation failures warn but never fail
// the command.
func writeJSON(v any, outPath, schemaRelPath string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	// Output validation is a safety check, not a requirement
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, jsonOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	return nil
}
