// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// impl_random.go — uniform random bulk edge insertion.
//
// Contract (strict):
//   - AddEdges(m) inserts exactly m edges chosen uniformly among all valid
//     edges absent from the builder, or fails before mutating anything.
//   - Validation order: ErrNegativeCount, then ErrTooManyEdges against the
//     remaining capacity, then ErrNeedRandSource.
//
// Strategy (bounded expected time at every density):
//   - While the post-insertion edge count stays within half of the total
//     capacity, rejection-sample edge ranks: each trial succeeds with
//     probability ≥ 1/2, so the expected number of draws is at most 2m.
//   - Beyond that, enumerate the complement instead: collect the ranks of
//     present edges and hand them to sampler.NewExcluding, which draws the
//     m new ranks uniformly in one pass with no retries.
//
// Ranks (exact integer bijections between edges and [0, capacity)):
//   - undirected, From < To:  rank = To(To-1)/2 + From
//   - directed,  From ≠ To:   rank = From·(n-1) + To − [To > From]
//
// Determinism:
//   - Both paths consume the RNG in a fixed order given the edge set, so a
//     seed pins the result regardless of map iteration order (the
//     complement sampler sorts its exclusion list internally).

package graphgen

import (
	"fmt"
	"math"

	"github.com/algorithm-ninja/konig/sampler"
)

// densityDenominator gates the strategy switch: rejection sampling runs
// only while densityDenominator*(present+m) ≤ capacity.
const densityDenominator = 2

// AddEdges inserts exactly m new edges drawn uniformly at random from the
// valid edges not yet present. Directed builders treat (u,v) and (v,u) as
// distinct candidates; undirected builders as one.
//
// Returns ErrNegativeCount for m < 0, ErrTooManyEdges when m exceeds the
// free capacity, and ErrNeedRandSource when no RNG is configured (m > 0).
func (g *graph) AddEdges(m int) error {
	// 1. Validate the request against the remaining capacity.
	if err := checkCount(methodAddEdges, m); err != nil {
		return err
	}
	if m == 0 {
		return nil
	}
	total := g.capacity()
	free := total - int64(len(g.edges))
	if int64(m) > free {
		return fmt.Errorf("%s: m=%d exceeds %d absent edges: %w",
			methodAddEdges, m, free, ErrTooManyEdges)
	}
	if err := g.needRNG(methodAddEdges); err != nil {
		return err
	}

	// 2. Pick the strategy by post-insertion density.
	if densityDenominator*(int64(len(g.edges))+int64(m)) <= total {
		g.addEdgesRejection(m, total)
		return nil
	}
	return g.addEdgesComplement(m, total)
}

// addEdgesRejection draws random edge ranks and retries on collisions.
// The caller guarantees the post-insertion density stays ≤ 1/2, bounding
// the expected draws per accepted edge by two.
func (g *graph) addEdgesRejection(m int, total int64) {
	for added := 0; added < m; {
		e := g.edgeAt(g.rng.Int63n(total))
		if _, present := g.edges[e]; present {
			continue
		}
		g.edges[e] = struct{}{}
		added++
	}
}

// addEdgesComplement samples m absent ranks directly, excluding the ranks
// of present edges. One pass, no retries, O(capacity) worst case.
func (g *graph) addEdgesComplement(m int, total int64) error {
	present := make([]int64, 0, len(g.edges))
	for e := range g.edges {
		present = append(present, g.rankOf(e))
	}

	s, err := sampler.NewExcluding(g.rng, m, 0, total, present)
	if err != nil {
		// Capacity was validated above; surface sampler errors verbatim.
		return fmt.Errorf("%s: %w", methodAddEdges, err)
	}
	for {
		r, ok := s.Next()
		if !ok {
			return nil
		}
		g.edges[g.edgeAt(r)] = struct{}{}
	}
}

// capacity returns the total number of valid edges for this builder:
// n(n-1) directed, n(n-1)/2 undirected.
func (g *graph) capacity() int64 {
	n := int64(g.n)
	if g.directed {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}

// rankOf linearizes a stored edge into [0, capacity).
func (g *graph) rankOf(e Edge) int64 {
	if !g.directed {
		// Canonical storage has From < To.
		return triRank(e.To, e.From)
	}
	r := int64(e.From)*int64(g.n-1) + int64(e.To)
	if e.To > e.From {
		r--
	}
	return r
}

// edgeAt inverts rankOf.
func (g *graph) edgeAt(rank int64) Edge {
	if !g.directed {
		hi, lo := triUnrank(rank)
		return Edge{From: lo, To: hi}
	}
	span := int64(g.n - 1)
	from := rank / span
	to := rank % span
	if to >= from {
		to++ // skip the self-loop slot
	}
	return Edge{From: int(from), To: int(to)}
}

// triRank maps an index pair hi > lo to its rank in the triangular
// enumeration (1,0)=0, (2,0)=1, (2,1)=2, (3,0)=3, ...
func triRank(hi, lo int) int64 {
	h := int64(hi)
	return h*(h-1)/2 + int64(lo)
}

// triUnrank inverts triRank: the unique hi with hi(hi-1)/2 ≤ rank is found
// from a float square-root seed and corrected with exact integer steps, so
// rounding error cannot leak into the result.
func triUnrank(rank int64) (hi, lo int) {
	// 8*rank is computed in float space; it may exceed int64 for huge ranks.
	h := int64((1 + math.Sqrt(8*float64(rank)+1)) / 2)
	for h*(h-1)/2 > rank {
		h--
	}
	for (h+1)*h/2 <= rank {
		h++
	}
	return int(h), int(rank - h*(h-1)/2)
}
