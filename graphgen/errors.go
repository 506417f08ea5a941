// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// errors.go — sentinel errors for the graphgen package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX), never by matching strings.
//   - Implementations attach method context via fmt.Errorf("...: %w", ErrX).
//   - Runtime operations never panic; validation panics are confined to
//     option constructors (WithRand, WithLabelFn).

package graphgen

import "errors"

// ErrTooFewVertices indicates a vertex count below the minimum required by
// the invoked constructor or shape (e.g. a negative n, or Wheel on n < 4).
// Usage: if errors.Is(err, graphgen.ErrTooFewVertices) { /* fix n */ }.
var ErrTooFewVertices = errors.New("graphgen: vertex count too small")

// ErrVertexRange indicates a vertex index outside [0, VertexCount()).
var ErrVertexRange = errors.New("graphgen: vertex out of range")

// ErrLoopNotAllowed indicates an attempt to add a self-loop (u == u).
// Builders hold simple graphs; loops are rejected unconditionally.
var ErrLoopNotAllowed = errors.New("graphgen: self-loops not allowed")

// ErrTooManyEdges indicates a requested edge count that exceeds the number
// of valid edges still absent from the builder (n(n-1)/2 undirected,
// n(n-1) directed, minus present edges; n-1 for Forest).
var ErrTooManyEdges = errors.New("graphgen: edge capacity exceeded")

// ErrNegativeCount indicates a negative edge count passed to a bulk
// insertion operation such as AddEdges, Forest or DAG.
var ErrNegativeCount = errors.New("graphgen: negative count")

// ErrNeedRandSource indicates a stochastic operation on a builder that has
// no RNG attached. Configure one with WithSeed or WithRand.
var ErrNeedRandSource = errors.New("graphgen: rng is required")

// ErrLabelRange indicates that WithRandomLabels was given an interval with
// fewer than VertexCount() values, so no injective labeling exists.
var ErrLabelRange = errors.New("graphgen: label range too small")
