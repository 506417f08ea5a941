// Package graphgen validation helpers shared by the builder operations.
// Each helper returns a sentinel wrapped with the caller's method tag.
package graphgen

import "fmt"

// checkVertex ensures v is a valid vertex index for this builder.
func (g *graph) checkVertex(method string, v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%s: vertex %d outside [0,%d): %w", method, v, g.n, ErrVertexRange)
	}
	return nil
}

// needRNG ensures a random source was configured before a stochastic
// operation runs.
func (g *graph) needRNG(method string) error {
	if g.rng == nil {
		return fmt.Errorf("%s: rng is required (use WithSeed or WithRand): %w", method, ErrNeedRandSource)
	}
	return nil
}

// checkCount rejects negative bulk-insertion counts.
func checkCount(method string, m int) error {
	if m < 0 {
		return fmt.Errorf("%s: count=%d: %w", method, m, ErrNegativeCount)
	}
	return nil
}
