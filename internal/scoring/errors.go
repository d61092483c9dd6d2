// Package scoring provides the individual profile scorers and the weighted
// score aggregator used by the matching engine.
package scoring

import "fmt"

// ValidationError represents an invalid input passed to a scorer, such as a
// missing embedding or a vector dimension mismatch. It signals an upstream
// contract violation rather than a transient scoring gap.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// WeightError represents an invalid aggregator weight configuration.
// It is raised at construction time and is not recoverable.
type WeightError struct {
	Message string
	Cause   error
}

func (e *WeightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("weight error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("weight error: %s", e.Message)
}

func (e *WeightError) Unwrap() error {
	return e.Cause
}
