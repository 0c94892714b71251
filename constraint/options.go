// SPDX-License-Identifier: MIT
// Package: constraint
//
// options.go - functional options for New. Option constructors panic on
// meaningless values; resolver methods never panic.

package constraint

// Deterministic defaults.
const (
	DefaultMaxDim     = 15     // square/rectangular dimensions are drawn from [1, 15]
	DefaultMaxDotSize = 60     // dot-product sizes are drawn from [1, 60]
	DefaultRetryCap   = 10_000 // rejection-sampling attempts before giving up
)

// Option customizes a Resolver.
type Option func(*config)

type config struct {
	maxDim     int
	maxDotSize int
	retryCap   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxDim:     DefaultMaxDim,
		maxDotSize: DefaultMaxDotSize,
		retryCap:   DefaultRetryCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxDim sets the upper bound of sampled dimensions. Panics if n < 1.
func WithMaxDim(n int) Option {
	if n < 1 {
		panic("constraint: WithMaxDim(n<1)")
	}
	return func(c *config) { c.maxDim = n }
}

// WithMaxDotSize sets the upper bound of dot-product sizes. Panics if n < 4,
// the smallest composite.
func WithMaxDotSize(n int) Option {
	if n < 4 {
		panic("constraint: WithMaxDotSize(n<4)")
	}
	return func(c *config) { c.maxDotSize = n }
}

// WithRetryCap bounds every rejection-sampling loop. Panics if n < 1.
func WithRetryCap(n int) Option {
	if n < 1 {
		panic("constraint: WithRetryCap(n<1)")
	}
	return func(c *config) { c.retryCap = n }
}
