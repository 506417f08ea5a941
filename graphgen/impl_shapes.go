// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// impl_shapes.go — structured topology overlays.
//
// Contract (strict):
//   - Every shape validates its vertex-count minimum first and then only
//     performs set insertions, so shapes overlay each other and any random
//     edges already present (duplicates collapse silently).
//   - Directed builders orient each edge exactly as listed below; shapes
//     never emit loops or out-of-range endpoints.
//   - Forest/Tree/DAG are stochastic and follow the package determinism
//     policy: all sampling comes from the builder's RNG.

package graphgen

import (
	"fmt"

	"github.com/algorithm-ninja/konig/sampler"
)

// Path overlays the path 0-1-2-...-(n-1).
// Returns ErrTooFewVertices for n < MinPathVertices.
func (g *graph) Path() error {
	if g.n < MinPathVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, g.n, MinPathVertices, ErrTooFewVertices)
	}
	for i := 0; i+1 < g.n; i++ {
		g.insert(i, i+1)
	}
	return nil
}

// Cycle overlays the cycle 0-1-...-(n-1)-0.
// Returns ErrTooFewVertices for n < MinCycleVertices.
func (g *graph) Cycle() error {
	if g.n < MinCycleVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, g.n, MinCycleVertices, ErrTooFewVertices)
	}
	for i := 0; i+1 < g.n; i++ {
		g.insert(i, i+1)
	}
	g.insert(g.n-1, 0)
	return nil
}

// Star overlays spokes from hub 0 to every other vertex.
// Returns ErrTooFewVertices for n < MinStarVertices.
func (g *graph) Star() error {
	if g.n < MinStarVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, g.n, MinStarVertices, ErrTooFewVertices)
	}
	for i := 1; i < g.n; i++ {
		g.insert(0, i)
	}
	return nil
}

// Wheel overlays a rim cycle over 1..n-1 plus spokes from hub 0 to every
// rim vertex.
// Returns ErrTooFewVertices for n < MinWheelVertices.
func (g *graph) Wheel() error {
	if g.n < MinWheelVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, g.n, MinWheelVertices, ErrTooFewVertices)
	}
	// Rim: 1-2-...-(n-1)-1.
	for i := 1; i+1 < g.n; i++ {
		g.insert(i, i+1)
	}
	g.insert(g.n-1, 1)
	// Spokes.
	for i := 1; i < g.n; i++ {
		g.insert(0, i)
	}
	return nil
}

// Clique overlays every edge (i, j) with i < j. Any n is accepted; n ≤ 1
// adds nothing.
func (g *graph) Clique() error {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			g.insert(i, j)
		}
	}
	return nil
}

// Forest overlays m random forest edges: for each of m distinct values v
// sampled from [0, n-1), the edge (u, v+1) with u uniform in [0, v]. Every
// vertex gains at most one edge toward a lower index, so the overlay is
// acyclic on an empty builder.
//
// Returns ErrNegativeCount for m < 0, ErrTooManyEdges for m > n-1, and
// ErrNeedRandSource when no RNG is configured (m > 0).
func (g *graph) Forest(m int) error {
	return g.forest(methodForest, m)
}

// Tree overlays a random spanning tree: Forest(n-1). A no-op for n = 0.
// Returns ErrNeedRandSource when no RNG is configured (n ≥ 2).
func (g *graph) Tree() error {
	if g.n == 0 {
		return nil
	}
	return g.forest(methodTree, g.n-1)
}

// forest implements Forest and Tree under the caller's method tag.
func (g *graph) forest(method string, m int) error {
	if err := checkCount(method, m); err != nil {
		return err
	}
	if m == 0 {
		return nil
	}
	if int64(m) > int64(g.n-1) {
		return fmt.Errorf("%s: m=%d exceeds %d tree edges: %w", method, m, g.n-1, ErrTooManyEdges)
	}
	if err := g.needRNG(method); err != nil {
		return err
	}

	s, err := sampler.New(g.rng, m, 0, int64(g.n-1))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	for {
		v, ok := s.Next()
		if !ok {
			return nil
		}
		// Attach v+1 to a uniformly chosen lower vertex.
		g.insert(int(g.rng.Int63n(v+1)), int(v)+1)
	}
}

// DAG inserts m random edges oriented from higher to lower index, which
// keeps the inserted family acyclic by construction. Candidates are the
// n(n-1)/2 ordered pairs (u, v) with u > v, minus those already present;
// edges stored in the opposite orientation do not block their pair.
//
// Returns ErrNegativeCount for m < 0, ErrTooManyEdges when m exceeds the
// absent candidate count, and ErrNeedRandSource when no RNG is configured
// (m > 0).
func (d *Directed) DAG(m int) error {
	// 1. Validate the request against the descending-pair capacity.
	if err := checkCount(methodDAG, m); err != nil {
		return err
	}
	if m == 0 {
		return nil
	}
	n := int64(d.n)
	total := n * (n - 1) / 2

	present := make([]int64, 0, len(d.edges))
	for e := range d.edges {
		if e.From > e.To {
			present = append(present, triRank(e.From, e.To))
		}
	}
	free := total - int64(len(present))
	if int64(m) > free {
		return fmt.Errorf("%s: m=%d exceeds %d absent edges: %w", methodDAG, m, free, ErrTooManyEdges)
	}
	if err := d.needRNG(methodDAG); err != nil {
		return err
	}

	// 2. Sample absent descending pairs uniformly via the triangular rank.
	s, err := sampler.NewExcluding(d.rng, m, 0, total, present)
	if err != nil {
		return fmt.Errorf("%s: %w", methodDAG, err)
	}
	for {
		r, ok := s.Next()
		if !ok {
			return nil
		}
		hi, lo := triUnrank(r)
		d.insert(hi, lo)
	}
}
