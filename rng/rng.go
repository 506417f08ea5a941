// Package rng provides the deterministic random source that drives every
// stochastic operation in konig.
//
// There is no hidden global generator: callers create a seeded source (or a
// ready *rand.Rand handle) and pass it explicitly to samplers and graph
// builders. Two handles with the same seed produce identical streams, which
// is what makes generated graphs reproducible. A handle is owned by one
// logical thread of execution at a time; wrap it externally if you must
// share it across goroutines.
package rng

import (
	"math/rand"
)

// mixWord is the fixed initial value of the auxiliary state word.
// The seed only replaces the output word, so the first outputs are already
// well mixed even for tiny seeds such as 0 or 1.
const mixWord uint64 = 8867512362436069

// source implements rand.Source64 with a 64-bit two-word variant of the
// xorshift generator (shift triple 11/8/19).
type source struct {
	x uint64 // auxiliary word, starts at mixWord
	w uint64 // output word, starts at the seed
}

// NewSource returns a deterministic rand.Source64 seeded with seed.
// Re-seeding via Seed fully resets the state, so
// NewSource(s) and an existing source after Seed(s) emit the same stream.
func NewSource(seed int64) rand.Source64 {
	s := &source{}
	s.Seed(seed)

	return s
}

// New returns a *rand.Rand backed by NewSource(seed). It is the handle the
// rest of the library consumes (Intn, Perm, Shuffle and friends).
func New(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Seed resets the generator state as if the source had just been created
// with NewSource(seed).
func (s *source) Seed(seed int64) {
	s.x = mixWord
	s.w = uint64(seed)
}

// Uint64 advances the generator and returns the next 64-bit value.
func (s *source) Uint64() uint64 {
	t := s.x ^ (s.x << 11)
	s.x = s.w
	s.w = s.w ^ (s.w >> 19) ^ (t ^ (t >> 8))

	return s.w
}

// Int63 returns a non-negative 63-bit value, as required by rand.Source.
func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
