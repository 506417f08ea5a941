// Package sampler draws fixed-size uniform random subsets from integer
// ranges, without replacement.
//
// A RangeSampler is constructed from (count, low, high) plus an explicit
// random handle, and yields count pairwise-distinct values from [low, high)
// in ascending order. Every size-count subset of the range is equally
// likely. The sequence is one-pass: each value is produced once, the
// sampler is exhausted after count yields, and it cannot be restarted.
//
// Two sampling strategies are used internally, picked by density:
//
//   - rejection sampling against a hash set when the request covers at most
//     half of the candidate values — expected O(count) draws;
//   - selection sampling (a single left-to-right scan accepting each
//     candidate with probability needed/remaining) when the request is
//     denser — O(high-low) time, bounded with no retries.
//
// Both strategies produce exactly uniform subsets, so the split is purely
// a running-time concern.
//
// NewExcluding additionally removes a caller-supplied exclusion set from
// the candidate range before sampling, which konig/graphgen uses to sample
// only edges that are still absent from a graph.
package sampler
