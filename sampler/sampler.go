// SPDX-License-Identifier: MIT
// Package: sampler
//
// sampler.go - bounded-integer random matrices.

package sampler

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cmatfixture/matrix"
)

// Sampler draws uniformly distributed integers and integer matrices.
type Sampler struct {
	rng       *rand.Rand
	seed      int64 // root seed used by Derive; 0 when built WithRand
	low, high int64
}

// New builds a Sampler. Without options it is seeded with DefaultSeed and
// draws entries from [DefaultLow, DefaultHigh).
// Complexity: O(len(opts)).
func New(opts ...Option) *Sampler {
	cfg := newConfig(opts...)

	s := &Sampler{low: cfg.low, high: cfg.high}
	if cfg.rng != nil {
		s.rng = cfg.rng
	} else {
		s.seed = cfg.seed
		s.rng = rngFromSeed(cfg.seed)
	}

	return s
}

// Range returns the configured half-open entry range.
func (s *Sampler) Range() (low, high int64) {
	return s.low, s.high
}

// Seed returns the root seed, or 0 if the Sampler was built WithRand.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Derive returns an independent Sampler for the given stream id. For seeded
// samplers the child depends only on (seed, stream), so trial i gets the same
// values no matter which worker generates it or in which order. Samplers built
// WithRand consume one value from their source to pick the parent seed.
// Complexity: O(1).
func (s *Sampler) Derive(stream uint64) *Sampler {
	parent := s.seed
	if parent == 0 {
		parent = s.rng.Int63()
	}
	child := normalizeSeed(DeriveSeed(parent, stream))

	return &Sampler{
		rng:  rngFromSeed(child),
		seed: child,
		low:  s.low,
		high: s.high,
	}
}

// Int returns a uniform integer in [low, high).
func (s *Sampler) Int(low, high int64) (int64, error) {
	if low >= high {
		return 0, fmt.Errorf("Int[%d,%d): %w", low, high, ErrEmptyRange)
	}

	return low + s.rng.Int63n(high-low), nil
}

// Scalar returns a uniform integer from the configured range.
func (s *Sampler) Scalar() int64 {
	return s.low + s.rng.Int63n(s.high-s.low)
}

// Dim returns a uniform dimension in [1, max].
func (s *Sampler) Dim(max int) (int, error) {
	if max < 1 {
		return 0, fmt.Errorf("Dim(%d): %w", max, ErrBadDimension)
	}

	return s.rng.Intn(max) + 1, nil
}

// Intn returns a uniform integer in [0, n). n must be > 0.
func (s *Sampler) Intn(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("Intn(%d): %w", n, ErrEmptyRange)
	}

	return s.rng.Intn(n), nil
}

// Pick returns one element of choices chosen uniformly (with repetition across calls).
func (s *Sampler) Pick(choices []int) (int, error) {
	if len(choices) == 0 {
		return 0, ErrEmptyChoice
	}

	return choices[s.rng.Intn(len(choices))], nil
}

// Matrix samples a rows×cols matrix with entries from the configured range.
func (s *Sampler) Matrix(rows, cols int) (*matrix.Dense, error) {
	return s.MatrixIn(rows, cols, s.low, s.high)
}

// MatrixIn samples a rows×cols matrix whose entries are drawn independently
// and uniformly from [low, high), row by row.
//
// Errors:
//   - rows<1 or cols<1: ErrBadDimension and matrix.ErrBadShape.
//   - low>=high: ErrEmptyRange.
//
// Complexity: O(rows*cols).
func (s *Sampler) MatrixIn(rows, cols int, low, high int64) (*matrix.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Matrix %dx%d: %w: %w", rows, cols, ErrBadDimension, matrix.ErrBadShape)
	}
	if low >= high {
		return nil, fmt.Errorf("Matrix[%d,%d): %w", low, high, ErrEmptyRange)
	}

	values := make([]int64, rows*cols)
	span := high - low
	for i := range values {
		values[i] = low + s.rng.Int63n(span)
	}

	return matrix.FromInts(rows, cols, values)
}
