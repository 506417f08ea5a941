// SPDX-License-Identifier: MIT
// Package: konig/sampler
//
// sampler.go — RangeSampler construction and one-pass iteration.
//
// Contract (strict):
//   - New(r, count, low, high) draws count pairwise-distinct values
//     uniformly from [low, high); every C(high-low, count) subset is
//     equally likely.
//   - Output order is ascending and the sequence is one-shot.
//   - Validation happens before any draw; on error the rng is untouched.
//
// Determinism:
//   - For a fixed rng state and arguments the produced sequence is fixed;
//     both strategies consume the rng in a documented, stable order.
package sampler

import (
	"fmt"
	"math/rand"
	"sort"
)

// densityDenominator gates the strategy switch: rejection sampling is used
// only while count ≤ capacity/densityDenominator, which keeps the expected
// number of draws per accepted value at or below two.
const densityDenominator = 2

// RangeSampler yields a uniformly chosen fixed-size subset of an integer
// range as a one-pass ascending sequence. Construct with New or
// NewExcluding; the zero value is an exhausted sampler.
//
// A RangeSampler is owned by its creator and is not safe for concurrent
// use.
type RangeSampler struct {
	values []int64 // ascending sampled values
	pos    int     // next index to yield
}

// New returns a RangeSampler holding count distinct values drawn uniformly
// from [low, high).
//
// Errors:
//   - ErrInvalidRange if count < 0, low > high, or count > high-low.
//   - ErrNeedRandSource if r is nil and count > 0.
//
// Complexity: expected O(count) when count ≤ (high-low)/2, O(high-low)
// otherwise. The range width high-low must itself fit in an int64.
func New(r *rand.Rand, count int, low, high int64) (*RangeSampler, error) {
	return NewExcluding(r, count, low, high, nil)
}

// NewExcluding is New with an exclusion set: values listed in excl are
// removed from the candidate range before sampling and never appear in the
// output. Duplicates in excl and entries outside [low, high) are ignored.
// excl itself is not modified.
//
// Errors are as in New, with capacity reduced by the usable exclusions.
func NewExcluding(r *rand.Rand, count int, low, high int64, excl []int64) (*RangeSampler, error) {
	// 1) Validate the request shape before touching the rng.
	if count < 0 || low > high {
		return nil, fmt.Errorf("NewExcluding: count=%d over [%d,%d): %w",
			count, low, high, ErrInvalidRange)
	}

	// 2) Normalize exclusions and derive the effective candidate capacity.
	ex := normalizeExcluded(excl, low, high)
	capacity := (high - low) - int64(len(ex))
	if int64(count) > capacity {
		return nil, fmt.Errorf("NewExcluding: count=%d exceeds %d available in [%d,%d) after %d exclusions: %w",
			count, capacity, low, high, len(ex), ErrInvalidRange)
	}

	// 3) The empty sample needs no randomness at all.
	if count == 0 {
		return &RangeSampler{}, nil
	}
	if r == nil {
		return nil, fmt.Errorf("NewExcluding: %w", ErrNeedRandSource)
	}

	// 4) Sample compact indices over [0, capacity), i.e. positions among
	//    the allowed values, using the density-appropriate strategy.
	var compact []int64
	if int64(count)*densityDenominator <= capacity {
		compact = rejectionSample(r, count, capacity)
	} else {
		compact = selectionSample(r, count, capacity)
	}

	// 5) Remap compact indices to actual values: shift by low and walk the
	//    sorted exclusion list so each excluded value pushes later samples
	//    one step right. The mapping is an order-preserving bijection from
	//    [0, capacity) onto the allowed values, so uniformity is preserved.
	j := 0
	for i, c := range compact {
		for j < len(ex) && ex[j] <= low+c+int64(j) {
			j++
		}
		compact[i] = low + c + int64(j)
	}

	return &RangeSampler{values: compact}, nil
}

// Next yields the next sampled value in ascending order. The second result
// is false once the sequence is exhausted.
func (s *RangeSampler) Next() (int64, bool) {
	if s.pos >= len(s.values) {
		return 0, false
	}
	v := s.values[s.pos]
	s.pos++

	return v, true
}

// Len reports how many values have not been yielded yet.
func (s *RangeSampler) Len() int {
	return len(s.values) - s.pos
}

// Collect drains the sampler, returning all values Next has not yielded.
// After Collect the sampler is exhausted.
func (s *RangeSampler) Collect() []int64 {
	out := make([]int64, s.Len())
	copy(out, s.values[s.pos:])
	s.pos = len(s.values)

	return out
}

// rejectionSample draws count distinct values from [0, k) by redrawing on
// collision. Callers guarantee count ≤ k/densityDenominator, so each value
// costs at most two draws in expectation. Result is sorted ascending.
func rejectionSample(r *rand.Rand, count int, k int64) []int64 {
	seen := make(map[int64]struct{}, count)
	out := make([]int64, 0, count)
	for len(out) < count {
		v := r.Int63n(k)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// selectionSample draws count distinct values from [0, k) with a single
// left-to-right pass, accepting each candidate with probability
// needed/remaining. Exactly uniform over subsets, naturally ascending, and
// free of retries — O(k) regardless of density.
func selectionSample(r *rand.Rand, count int, k int64) []int64 {
	out := make([]int64, 0, count)
	need := int64(count)
	for candidate := int64(0); candidate < k && need > 0; candidate++ {
		remaining := k - candidate
		if r.Int63n(remaining) < need {
			out = append(out, candidate)
			need--
		}
	}

	return out
}

// normalizeExcluded returns the in-range entries of excl, sorted and
// de-duplicated, without modifying the input slice.
func normalizeExcluded(excl []int64, low, high int64) []int64 {
	if len(excl) == 0 {
		return nil
	}
	ex := make([]int64, 0, len(excl))
	for _, e := range excl {
		if e >= low && e < high {
			ex = append(ex, e)
		}
	}
	if len(ex) == 0 {
		return nil
	}
	sort.Slice(ex, func(i, j int) bool { return ex[i] < ex[j] })

	// Drop adjacent duplicates in place.
	w := 1
	for i := 1; i < len(ex); i++ {
		if ex[i] != ex[w-1] {
			ex[w] = ex[i]
			w++
		}
	}

	return ex[:w]
}
