// Package konig generates synthetic graphs for use as programmatic test
// data — directed and undirected, with reproducible randomness and
// guaranteed structural properties (duplicate-free edge sets, optional
// connectivity).
//
// What is konig?
//
//	A small, deterministic library that brings together:
//		• Seeded randomness: an explicit xorshift-backed *rand.Rand handle
//		• Uniform range sampling: fixed-size subsets without replacement
//		• Union-find: near-constant-time connectivity bookkeeping
//		• Graph builders: random edge sets, connectivity enforcement,
//		  and classic shapes (paths, cycles, trees, stars, wheels,
//		  cliques, DAGs)
//
// Why konig?
//
//   - Reproducible – every stochastic operation is driven by a seed you own;
//     the same seed always yields the same graph
//   - Uniform – random edge sets are drawn uniformly from the space of
//     valid ones, with no retry storms near saturation
//   - Plain data out – builders hand back vertex counts, edge lists and
//     labels; rendering and I/O stay in the caller's hands
//
// Everything is organized under four subpackages:
//
//	rng/      — deterministic random source and *rand.Rand constructor
//	sampler/  — uniform without-replacement sampling from integer ranges
//	dsu/      — disjoint-set (union-find) structure
//	graphgen/ — undirected and directed graph builders
//
// Quick sketch:
//
//	g, _ := graphgen.NewUndirected(10, graphgen.WithSeed(1))
//	_ = g.AddEdges(20) // 20 distinct random edges, no loops
//	_ = g.Connect()    // minimum extra edges to reach one component
//	for _, e := range g.Edges() {
//		// e.From, e.To ∈ [0,10), each unordered pair at most once
//	}
package konig
