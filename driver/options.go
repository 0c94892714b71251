// SPDX-License-Identifier: MIT
// Package: driver
//
// options.go - functional options for New.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Defaults are deterministic: seed 1, one worker, per-family trial counts
//     from fixture.Kind.Trials, logging discarded.

package driver

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/katalvlaran/cmatfixture/fixture"
	"github.com/katalvlaran/cmatfixture/sampler"
)

// ProgressFunc observes trial completion. Calls are serialized.
type ProgressFunc func(k fixture.Kind, done, total int)

// Option customizes a Driver.
type Option func(*config)

type config struct {
	seed     int64
	trials   map[fixture.Kind]int
	workers  int
	retryCap int
	maxDim   int
	logger   *slog.Logger
	progress ProgressFunc
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:     sampler.DefaultSeed,
		trials:   map[fixture.Kind]int{},
		workers:  1,
		retryCap: constraint.DefaultRetryCap,
		maxDim:   constraint.DefaultMaxDim,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the root seed. 0 means sampler.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithTrials overrides the trial count of family k. Panics if n < 1 or k is unknown.
func WithTrials(k fixture.Kind, n int) Option {
	if n < 1 {
		panic("driver: WithTrials(n<1)")
	}
	if !k.Valid() {
		panic("driver: WithTrials(unknown family)")
	}
	return func(c *config) { c.trials[k] = n }
}

// WithWorkers sets the number of concurrent trial generators. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("driver: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithRetryCap bounds rejection sampling per trial. Panics if n < 1.
func WithRetryCap(n int) Option {
	if n < 1 {
		panic("driver: WithRetryCap(n<1)")
	}
	return func(c *config) { c.retryCap = n }
}

// WithMaxDim bounds sampled matrix dimensions. Panics if n < 1.
func WithMaxDim(n int) Option {
	if n < 1 {
		panic("driver: WithMaxDim(n<1)")
	}
	return func(c *config) { c.maxDim = n }
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithProgress registers a progress observer. Panics on nil.
func WithProgress(fn ProgressFunc) Option {
	if fn == nil {
		panic("driver: WithProgress(nil)")
	}
	return func(c *config) { c.progress = fn }
}
