// SPDX-License-Identifier: MIT
// Package: konig/graphgen
//
// options.go — functional options for builder construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     builder operations themselves never panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand,
//     never through hidden globals.
//   - The last labeling option applied wins.

package graphgen

import (
	"math/rand"

	"github.com/algorithm-ninja/konig/rng"
)

// Option customizes a builder by mutating its config before construction.
// Applying N options costs O(N) time.
type Option func(*config)

// config collects option state resolved by NewUndirected/NewDirected.
type config struct {
	rng          *rand.Rand
	labelFn      LabelFn
	randomLabels bool
	labelLow     int64
	labelHigh    int64
}

// newConfig applies opts over the zero config (no RNG, identity labels).
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed attaches a fresh deterministic RNG seeded with seed.
// Use this in tests and generators to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source: reproducible draws across runs and platforms.
		c.rng = rng.New(seed)
	}
}

// WithRand attaches an explicit RNG handle, letting several builders share
// one random stream. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("graphgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLabelFn sets the vertex labeling scheme: index -> label. The function
// must be deterministic and injective over [0, n). Panics on nil.
func WithLabelFn(fn LabelFn) Option {
	if fn == nil {
		panic("graphgen: WithLabelFn(nil)")
	}
	return func(c *config) {
		c.labelFn = fn
		c.randomLabels = false
	}
}

// WithRandomLabels assigns each vertex a distinct random label from
// [low, high), drawn once at construction from the builder's RNG.
// Construction fails with ErrLabelRange when high-low < n and with
// ErrNeedRandSource when no RNG is configured.
func WithRandomLabels(low, high int64) Option {
	return func(c *config) {
		c.randomLabels = true
		c.labelFn = nil
		c.labelLow, c.labelHigh = low, high
	}
}
