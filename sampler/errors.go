package sampler

import "errors"

var (
	// ErrInvalidRange indicates an infeasible sampling request: a negative
	// count, low > high, or a count larger than the number of values that
	// remain available in [low, high) after exclusions.
	// Usage: if errors.Is(err, sampler.ErrInvalidRange) { /* fix request */ }.
	ErrInvalidRange = errors.New("sampler: invalid sampling range")

	// ErrNeedRandSource indicates that a non-nil *rand.Rand is required to
	// draw a non-empty sample. Seed one via konig/rng.New.
	ErrNeedRandSource = errors.New("sampler: rng is required")
)
