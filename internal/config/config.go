// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; zero values fall back to engine defaults.
type Config struct {
	// Engine tuning
	Weights        *scoring.Weights `json:"weights,omitempty"`         // aggregator factor weights, must sum to 1.0
	MatchThreshold float64          `json:"match_threshold,omitempty" validate:"gte=0,lte=1"` // skill similarity threshold
	PenaltyPerYear float64          `json:"penalty_per_year,omitempty" validate:"gte=0,lte=1"` // experience gap penalty

	// Shortlist defaults
	TopN     int     `json:"top_n,omitempty" validate:"gte=0"`        // maximum shortlist size
	MinScore float64 `json:"min_score,omitempty" validate:"gte=0,lte=1"` // minimum qualifying overall score

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // print boxed result summaries
}

// Default shortlist parameters.
const (
	DefaultTopN     = 5
	DefaultMinScore = 0.0
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and, when weights are supplied, the
// complete-set and sum-to-1.0 invariants.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Weights != nil {
		if err := c.Weights.Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	return nil
}

// EngineParams returns matching engine parameters with config overrides
// applied on top of the defaults.
func (c *Config) EngineParams() matching.Params {
	params := matching.DefaultParams()

	if c.MatchThreshold > 0 {
		params.MatchThreshold = c.MatchThreshold
	}
	if c.PenaltyPerYear > 0 {
		params.PenaltyPerYear = c.PenaltyPerYear
	}
	if c.Weights != nil {
		params.Weights = *c.Weights
	}

	return params
}

// ShortlistTopN returns the configured shortlist size or the default.
func (c *Config) ShortlistTopN() int {
	if c.TopN > 0 {
		return c.TopN
	}
	return DefaultTopN
}

// ShortlistMinScore returns the configured minimum score or the default.
func (c *Config) ShortlistMinScore() float64 {
	if c.MinScore > 0 {
		return c.MinScore
	}
	return DefaultMinScore
}
