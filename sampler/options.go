// SPDX-License-Identifier: MIT
// Package: sampler
//
// options.go - functional options for New.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Sampling methods themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package sampler

import "math/rand"

// Default half-open entry range [DefaultLow, DefaultHigh).
const (
	DefaultLow  int64 = -10
	DefaultHigh int64 = 10
)

// Option customizes a Sampler before it is built.
type Option func(*config)

// config aggregates all knobs used by New.
type config struct {
	seed      int64
	rng       *rand.Rand // explicit source; wins over seed when set
	low, high int64
}

// newConfig applies options in order (last wins) over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		seed: DefaultSeed,
		low:  DefaultLow,
		high: DefaultHigh,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds the sampler deterministically. Seed 0 means DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = normalizeSeed(seed)
		c.rng = nil
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the half-open entry range [low, high). Panics if low >= high.
func WithRange(low, high int64) Option {
	if low >= high {
		panic("sampler: WithRange(low>=high)")
	}
	return func(c *config) {
		c.low, c.high = low, high
	}
}
