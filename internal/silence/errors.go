package silence

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a tunable value outside its documented range.
// Out-of-range values are rejected, never silently clamped, so the caller can
// surface a precise message to the user.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Name, e.Value, e.Reason)
}

// InvariantError reports a broken ordering or disjointness invariant between
// pipeline stages. It indicates a logic bug and is always fatal to the run.
type InvariantError struct {
	Detail string
}

func (e InvariantError) Error() string {
	return "internal invariant violation: " + e.Detail
}

var (
	// ErrNoContentRemaining means the parameter set removed the entire
	// signal. Recoverable by relaxing parameters; the caller must not
	// proceed to the encode step.
	ErrNoContentRemaining = errors.New("no content remaining after shaping")

	// ErrEmptyPlan is the terminal guard before reconstruction: the encode
	// collaborator must never be invoked with zero segments.
	ErrEmptyPlan = errors.New("cut plan is empty")
)
