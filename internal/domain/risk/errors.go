package risk

import "errors"

var (
	// ErrInvalidInput indicates an assignment that cannot be scored.
	ErrInvalidInput = errors.New("invalid scoring input")
	// ErrInvalidWeights indicates scorer weights that don't sum to 1.
	ErrInvalidWeights = errors.New("risk weights must be non-negative and sum to 1")
	// ErrInvalidHorizon indicates a non-positive planning horizon.
	ErrInvalidHorizon = errors.New("planning horizon must be positive")
)
