// Package matching orchestrates the individual scorers into a single
// candidate-to-job match.
package matching

import (
	"io"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Fallback scores substituted when a sub-scorer fails on a call.
// A single sub-scorer failure never aborts the overall match.
var fallbackScores = map[string]float64{
	scoring.FactorSemantic:   0.0,
	scoring.FactorExperience: 0.0,
	scoring.FactorEducation:  scoring.UnknownEducationScore,
}

// Params holds the tunable knobs of a matching Engine. All fields are fixed
// at construction; an Engine is immutable and safe for concurrent use.
type Params struct {
	MatchThreshold float64         // skill similarity threshold
	PenaltyPerYear float64         // experience gap penalty
	Weights        scoring.Weights // aggregator factor weights
}

// DefaultParams returns the default engine parameters.
func DefaultParams() Params {
	return Params{
		MatchThreshold: skills.DefaultMatchThreshold,
		PenaltyPerYear: scoring.DefaultPenaltyPerYear,
		Weights:        scoring.DefaultWeights(),
	}
}

// Engine runs the full matching pipeline: semantic, skills, experience and
// education scoring followed by weighted aggregation into one MatchResult.
type Engine struct {
	factors    []scoring.Scorer
	matcher    *skills.Matcher
	aggregator *scoring.Aggregator
	logger     *slog.Logger
}

// NewEngine creates an Engine. An invalid weight set fails construction
// immediately; per-call scorer failures are recovered later with fallbacks.
// A nil logger discards diagnostics.
func NewEngine(params Params, logger *slog.Logger) (*Engine, error) {
	aggregator, err := scoring.NewAggregator(params.Weights)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}

	return &Engine{
		factors: scoring.Factors(
			scoring.NewSemanticScorer(),
			scoring.NewExperienceScorerWithPenalty(params.PenaltyPerYear),
			scoring.NewEducationScorer(),
		),
		matcher:    skills.NewMatcherWithThreshold(params.MatchThreshold),
		aggregator: aggregator,
		logger:     logger,
	}, nil
}

// NewDefaultEngine creates an Engine with default parameters.
func NewDefaultEngine(logger *slog.Logger) *Engine {
	engine, err := NewEngine(DefaultParams(), logger)
	if err != nil {
		// Default parameters always validate.
		panic(err)
	}
	return engine
}

// Weights returns the aggregator weight set in use.
func (e *Engine) Weights() scoring.Weights {
	return e.aggregator.Weights()
}

// Match scores a candidate against a job and returns a fully populated
// MatchResult. Sub-scorer failures are isolated: each failing factor is
// replaced by its documented fallback and logged, never propagated.
func (e *Engine) Match(candidate *types.CandidateProfile, job *types.JobProfile) *types.MatchResult {
	factorScores := make(map[string]float64, len(e.factors))
	for _, factor := range e.factors {
		score, err := factor.Score(candidate, job)
		if err != nil {
			score = fallbackScores[factor.ID()]
			e.logger.Warn("scorer failed, using fallback",
				"factor", factor.ID(),
				"fallback", score,
				"error", err,
			)
		}
		factorScores[factor.ID()] = score
	}

	outcome := e.matchSkills(candidate, job)

	overall := e.aggregator.Aggregate(
		factorScores[scoring.FactorSemantic],
		outcome.Score,
		factorScores[scoring.FactorExperience],
		factorScores[scoring.FactorEducation],
	)

	result := types.NewMatchResult(
		overall,
		factorScores[scoring.FactorSemantic],
		outcome.Score,
		factorScores[scoring.FactorExperience],
		factorScores[scoring.FactorEducation],
		outcome.MatchedSkills,
		outcome.MissingSkills,
		outcome.BonusSkills,
		outcome.SkillSimilarities,
	)

	e.logger.Debug("match complete",
		"job", job.Title,
		"overall", result.OverallScore,
		"label", result.MatchLabel(),
		"skills", result.SkillsScore,
		"semantic", result.SemanticScore,
	)

	return result
}

// matchSkills runs the skills matcher, substituting the documented fallback
// (score 0.0, every required skill missing) when matching fails.
func (e *Engine) matchSkills(candidate *types.CandidateProfile, job *types.JobProfile) *skills.Outcome {
	outcome, err := e.matcher.Match(
		candidate.HardSkills,
		job.RequiredSkills,
		job.NiceToHaveSkills,
		candidate.SkillEmbeddings,
		job.SkillEmbeddings,
	)
	if err != nil {
		e.logger.Warn("skills matching failed, using fallback",
			"error", err,
		)
		missing := make([]string, len(job.RequiredSkills))
		copy(missing, job.RequiredSkills)
		return &skills.Outcome{
			Score:             0.0,
			MatchedSkills:     make([]string, 0),
			MissingSkills:     missing,
			BonusSkills:       make([]string, 0),
			SkillSimilarities: make(map[string]float64),
		}
	}
	return outcome
}
