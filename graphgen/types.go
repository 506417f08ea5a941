// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// types.go — builder types and constructors.
//
// Contract (strict):
//   - NewUndirected/NewDirected accept n ≥ 0 (else ErrTooFewVertices) and
//     resolve all options eagerly, so a successfully constructed builder
//     never fails on configuration grounds later.
//   - The edge set starts empty and only grows; stored pairs are always
//     valid (in-range endpoints, no loops, undirected pairs canonical).

package graphgen

import (
	"fmt"
	"math/rand"
)

// Edge is an ordered vertex pair. Undirected builders store each edge in
// canonical orientation From < To; directed builders store it as added.
type Edge struct {
	From int
	To   int
}

// graph carries the state shared by both builder kinds: the fixed vertex
// count, the edge set, the optional RNG handle and the labeling scheme.
type graph struct {
	n        int
	directed bool
	edges    map[Edge]struct{}
	rng      *rand.Rand
	labelFn  LabelFn
}

// Undirected builds a simple undirected graph over the vertices 0..n-1.
// (u,v) and (v,u) name the same edge. Not safe for concurrent use.
type Undirected struct {
	graph
}

// Directed builds a simple directed graph over the vertices 0..n-1.
// (u,v) and (v,u) are distinct edges and both may be present.
// Not safe for concurrent use.
type Directed struct {
	graph
}

// NewUndirected returns an empty undirected builder on n vertices.
// Returns ErrTooFewVertices for n < 0; label options are validated here
// (see WithRandomLabels).
func NewUndirected(n int, opts ...Option) (*Undirected, error) {
	g, err := newGraph(methodNewUndirected, n, false, opts...)
	if err != nil {
		return nil, err
	}
	return &Undirected{graph: g}, nil
}

// NewDirected returns an empty directed builder on n vertices.
// Returns ErrTooFewVertices for n < 0; label options are validated here
// (see WithRandomLabels).
func NewDirected(n int, opts ...Option) (*Directed, error) {
	g, err := newGraph(methodNewDirected, n, true, opts...)
	if err != nil {
		return nil, err
	}
	return &Directed{graph: g}, nil
}

// newGraph validates n, resolves options and assembles the shared state.
func newGraph(method string, n int, directed bool, opts ...Option) (graph, error) {
	if n < 0 {
		return graph{}, fmt.Errorf("%s: n=%d < min=0: %w", method, n, ErrTooFewVertices)
	}

	cfg := newConfig(opts...)
	labelFn, err := resolveLabels(method, n, cfg)
	if err != nil {
		return graph{}, err
	}

	return graph{
		n:        n,
		directed: directed,
		edges:    make(map[Edge]struct{}),
		rng:      cfg.rng,
		labelFn:  labelFn,
	}, nil
}
