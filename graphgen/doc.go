// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// doc.go — package overview, contracts and usage sketches.

// Package graphgen builds random and structured test graphs with
// reproducible randomness and guaranteed structural properties.
//
// What graphgen gives you:
//
//   - Undirected and Directed builders over a fixed vertex set 0..n-1,
//     each holding a duplicate-free, self-loop-free edge set that only
//     ever grows.
//   - AddEdges(m): bulk insertion of exactly m new edges chosen uniformly
//     among all absent valid edges, with a density-aware strategy switch
//     so the running time stays bounded near saturation.
//   - Connect (undirected): the minimum number of extra edges to make the
//     graph connected, picked at random with a DisjointSet tracking
//     components.
//   - Shape overlays: Path, Cycle, Star, Wheel, Clique, Forest, Tree and,
//     for directed builders, DAG.
//   - Vertex labeling schemes for emitting test data whose vertex names
//     are decoupled from internal indices.
//
// Determinism is explicit. A builder performs no random draw unless an
// RNG was attached via WithSeed or WithRand, and every stochastic
// operation consumes that single handle in a documented order, so a fixed
// seed fixes the whole construction. Stochastic calls on a builder with
// no RNG fail with ErrNeedRandSource; nothing falls back to global state.
//
// Undirected edges are stored in canonical orientation From < To, so
// (u,v) and (v,u) name the same edge and Edges never reports both.
// Directed builders keep (u,v) and (v,u) distinct.
//
// Error policy follows the rest of konig: package-level sentinels,
// matched with errors.Is, attached to method context via %w wrapping.
// Option constructors panic on meaningless inputs (nil RNG, nil label
// function); runtime operations never panic. Every operation validates
// before mutating, so a failed call leaves the builder unchanged.
//
// Quick start:
//
//	g, err := graphgen.NewUndirected(10, graphgen.WithSeed(1))
//	if err != nil { ... }
//	if err := g.AddEdges(20); err != nil { ... }  // 20 uniform random edges
//	if err := g.Connect(); err != nil { ... }     // now one component
//	for _, e := range g.Edges() {                 // sorted by (From, To)
//		fmt.Println(e.From, e.To)
//	}
//
// Builders are owned by a single logical thread at a time; share one
// across goroutines only with external synchronization.
package graphgen
