// Package dsu implements a disjoint-set (union-find) structure over the
// elements 0..n-1, with union by rank and iterative path compression.
//
// A DisjointSet starts as n singleton sets and only ever coarsens: Merge
// joins the sets holding two elements, and Find reports a canonical
// representative for same-set queries. With both optimizations any
// sequence of m operations runs in O(m·α(n)) time, where α is the inverse
// Ackermann function (effectively constant per call).
//
// Representative identity is an implementation detail: Find(x) is stable
// between merges and Find(x) == Find(y) exactly when x and y share a set,
// but no other meaning should be read into the returned index.
//
// konig/graphgen unions a DisjointSet over edge endpoints to count
// components and to connect a generated graph with a minimal number of
// extra edges.
//
// A DisjointSet is owned by a single logical thread; wrap it with external
// synchronization if goroutines must share one.
package dsu
