// SPDX-License-Identifier: MIT
// Package: konig/dsu
//
// dsu.go — DisjointSet construction, merge and lookup.
//
// Contract (strict):
//   - New(n) creates n singleton sets over the elements 0..n-1.
//   - Find/Merge/Connected validate indices first and never mutate on error.
//   - Merge reports whether it reduced the set count (false for elements
//     already joined).
//
// Complexity: amortized O(α(n)) per operation via union by rank plus
// path halving inside find.
package dsu

import "fmt"

// DisjointSet maintains a partition of 0..n-1 into disjoint sets.
// The zero value is an empty (n = 0) partition; use New for anything else.
type DisjointSet struct {
	parent []int // parent[i] == i marks a root
	rank   []int // upper bound on tree height, grows only on equal-rank merges
	count  int   // number of disjoint sets remaining
}

// New returns a DisjointSet of n singleton sets.
// Returns ErrBadSize when n is negative.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: size %d: %w", n, ErrBadSize)
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	// Every element starts as the root of its own set.
	for i := range d.parent {
		d.parent[i] = i
	}
	return d, nil
}

// Find returns the representative of the set containing x.
// Returns ErrOutOfRange when x is not in [0, Size()).
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check("Find", x); err != nil {
		return 0, err
	}
	return d.find(x), nil
}

// Merge joins the sets containing x and y. It reports true when two
// distinct sets were merged and false when x and y were already together.
// Returns ErrOutOfRange when either index is not in [0, Size()).
func (d *DisjointSet) Merge(x, y int) (bool, error) {
	if err := d.check("Merge", x); err != nil {
		return false, err
	}
	if err := d.check("Merge", y); err != nil {
		return false, err
	}

	rx, ry := d.find(x), d.find(y)
	if rx == ry {
		return false, nil
	}

	// Attach the shallower tree under the deeper root; on a tie the
	// surviving root gains one rank.
	if d.rank[rx] < d.rank[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	if d.rank[rx] == d.rank[ry] {
		d.rank[rx]++
	}
	d.count--
	return true, nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrOutOfRange when either index is not in [0, Size()).
func (d *DisjointSet) Connected(x, y int) (bool, error) {
	if err := d.check("Connected", x); err != nil {
		return false, err
	}
	if err := d.check("Connected", y); err != nil {
		return false, err
	}
	return d.find(x) == d.find(y), nil
}

// Size returns the number of elements in the partition.
func (d *DisjointSet) Size() int { return len(d.parent) }

// Count returns the current number of disjoint sets. It starts at Size()
// and decreases by one on every merging Merge.
func (d *DisjointSet) Count() int { return d.count }

// check validates a single element index against the partition domain.
func (d *DisjointSet) check(method string, x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%s: element %d outside [0,%d): %w", method, x, len(d.parent), ErrOutOfRange)
	}
	return nil
}

// find walks x up to its root, pointing each visited element at its
// grandparent so later lookups take a shorter path.
func (d *DisjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}
