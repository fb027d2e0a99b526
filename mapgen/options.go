// SPDX-License-Identifier: MIT
// Package: gridwalk/mapgen
//
// options.go - functional options for the mapgen package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on meaningless inputs; Generate itself never
//     panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand. With
//     neither, the fixed defaultSeed is used.

package mapgen

import "math/rand"

// DefaultMaxTries is the attempt budget used when WithMaxTries is absent.
const DefaultMaxTries = 100

// defaultSeed is the fixed seed used when no RNG option is given, and when
// WithSeed(0) is passed.
const defaultSeed int64 = 1

// Option customizes Generate by mutating a config before the first attempt.
type Option func(*config)

// config holds the resolved generation parameters.
type config struct {
	rng      *rand.Rand
	maxTries int
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) *config {
	c := &config{maxTries: DefaultMaxTries}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(defaultSeed)
	}
	return c
}

// WithSeed creates a deterministic RNG from seed. seed == 0 selects defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs. The RNG is advanced by Generate and must not be shared
// across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mapgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMaxTries sets the attempt budget. Panics when n < 1.
func WithMaxTries(n int) Option {
	if n < 1 {
		panic("mapgen: WithMaxTries(n < 1)")
	}
	return func(c *config) {
		c.maxTries = n
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
