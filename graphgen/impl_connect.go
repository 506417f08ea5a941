// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// impl_connect.go — connectivity enforcement and component bookkeeping.
//
// Contract (strict):
//   - Connect adds exactly ComponentCount()-1 edges and leaves the builder
//     with a single connected component. It never collides with present
//     edges: every added edge crosses two components, and cross-component
//     pairs cannot already be joined.
//   - The pair selection is arbitrary but deterministic given the seed:
//     vertices are visited in one seeded permutation, the first vertex seen
//     in each component becomes its representative, and each later
//     representative attaches to one chosen uniformly among the earlier
//     ones. That wiring is a uniform random tree over the representatives.
//   - n = 0 is a no-op; any n ≥ 1 with an RNG attached succeeds.

package graphgen

import (
	"fmt"

	"github.com/algorithm-ninja/konig/dsu"
)

// Connect makes the undirected graph connected by adding the minimum
// number of edges, one per excess component.
// Returns ErrNeedRandSource when no RNG is configured.
func (u *Undirected) Connect() error {
	// 1. Trivial cases: the empty graph is connected by convention.
	if u.n == 0 {
		return nil
	}
	if err := u.needRNG(methodConnect); err != nil {
		return err
	}

	// 2. Union present edges to discover components.
	comps, err := u.componentSet()
	if err != nil {
		return fmt.Errorf("%s: %w", methodConnect, err)
	}

	// 3. Pick one representative per component: the first member seen
	//    while scanning the vertices in seeded random order.
	seen := make(map[int]struct{}, comps.Count())
	reps := make([]int, 0, comps.Count())
	for _, v := range u.rng.Perm(u.n) {
		root, err := comps.Find(v)
		if err != nil {
			return fmt.Errorf("%s: %w", methodConnect, err)
		}
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		reps = append(reps, v)
	}

	// 4. Wire a random tree over the representatives: each one attaches to
	//    a uniformly chosen predecessor.
	for i := 1; i < len(reps); i++ {
		u.insert(reps[u.rng.Intn(i)], reps[i])
	}
	return nil
}

// ComponentCount returns the number of connected components induced by the
// present edges, ignoring direction for directed builders. The empty graph
// has zero components.
func (g *graph) ComponentCount() int {
	if g.n == 0 {
		return 0
	}
	comps, err := g.componentSet()
	if err != nil {
		// Unreachable: n and stored edges are validated at insertion.
		return 0
	}
	return comps.Count()
}

// componentSet unions a fresh DisjointSet over the present edges.
func (g *graph) componentSet() (*dsu.DisjointSet, error) {
	comps, err := dsu.New(g.n)
	if err != nil {
		return nil, err
	}
	for e := range g.edges {
		if _, err := comps.Merge(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return comps, nil
}
