// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// methods.go — deterministic read-out accessors and manual edge insertion.
//
// Contract (strict):
//   - Accessors never mutate and never consume the RNG.
//   - Edges returns a fresh slice in ascending (From, To) order so callers
//     can rely on a stable rendering independent of insertion history.
//   - AddEdge validates first and is an idempotent set insertion; adding a
//     present edge is a silent no-op so shape overlays compose.

package graphgen

import (
	"fmt"
	"sort"
)

// VertexCount returns the fixed number of vertices n.
func (g *graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct edges currently present.
func (g *graph) EdgeCount() int { return len(g.edges) }

// Edges returns the current edge set as a fresh slice sorted ascending by
// (From, To). Mutating the result does not affect the builder.
func (g *graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	// Stable deterministic order regardless of map iteration.
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// HasEdge reports whether the edge (u, v) is present. For undirected
// builders the pair is canonicalized first, so HasEdge(u, v) and
// HasEdge(v, u) agree. Out-of-range endpoints report false.
func (g *graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	if !g.directed && u > v {
		u, v = v, u
	}
	_, ok := g.edges[Edge{From: u, To: v}]
	return ok
}

// AddEdge inserts the single edge (u, v).
// Returns ErrVertexRange when an endpoint is outside [0, n) and
// ErrLoopNotAllowed when u == v. Inserting a present edge changes nothing.
func (g *graph) AddEdge(u, v int) error {
	if err := g.checkVertex(methodAddEdge, u); err != nil {
		return err
	}
	if err := g.checkVertex(methodAddEdge, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%s: (%d,%d): %w", methodAddEdge, u, v, ErrLoopNotAllowed)
	}
	g.insert(u, v)
	return nil
}

// insert stores a validated edge, canonicalizing undirected orientation.
// Callers guarantee in-range endpoints and u != v.
func (g *graph) insert(u, v int) {
	if !g.directed && u > v {
		u, v = v, u
	}
	g.edges[Edge{From: u, To: v}] = struct{}{}
}
