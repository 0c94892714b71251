// SPDX-License-Identifier: MIT
// Package: constraint
//
// resolver.go - per-family input policies.
//
// Contract:
//   • All randomness comes from the injected *sampler.Sampler.
//   • Rejection loops are bounded by the retry cap; exceeding it returns
//     ErrRetriesExhausted wrapped with the method name.
//   • oracle.ErrSingular and ErrPrimeSize are consumed here.

package constraint

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cmatfixture/matrix"
	"github.com/katalvlaran/cmatfixture/oracle"
	"github.com/katalvlaran/cmatfixture/sampler"
)

const (
	methodRegularSquare = "RegularSquare"
	methodDotSize       = "DotSize"
	methodDotPair       = "DotPair"
)

// Resolver produces family-valid inputs from a Sampler.
// Not goroutine-safe (it shares the Sampler's state).
type Resolver struct {
	s          *sampler.Sampler
	cfg        config
	rejections int
}

// Regular is a square, non-singular matrix together with its exact inverse,
// computed once during rejection sampling.
type Regular struct {
	M   *matrix.Dense
	Inv *matrix.Dense
}

// DotOperands are two matrices whose flattened lengths are both Size.
// Op1 has shape (N, Size/N) and Op2 has shape (M, Size/M).
type DotOperands struct {
	Size     int
	Divisors []int
	N, M     int
	Op1, Op2 *matrix.Dense
}

// New builds a Resolver over s. Panics if s is nil.
func New(s *sampler.Sampler, opts ...Option) *Resolver {
	if s == nil {
		panic("constraint: New(nil sampler)")
	}

	return &Resolver{s: s, cfg: newConfig(opts...)}
}

// Rejections returns the number of draws rejected so far (singular matrices
// and non-composite dot sizes).
func (r *Resolver) Rejections() int {
	return r.rejections
}

// RegularSquare draws n uniformly from [1, maxDim] and an n×n matrix until the
// oracle can invert it. n is redrawn on every attempt.
//
// Errors: ErrRetriesExhausted; any non-singular oracle or sampler error.
// Complexity: expected O(1) attempts of O(n³) each.
func (r *Resolver) RegularSquare() (Regular, error) {
	for attempt := 0; attempt < r.cfg.retryCap; attempt++ {
		n, err := r.s.Dim(r.cfg.maxDim)
		if err != nil {
			return Regular{}, fmt.Errorf("%s: %w", methodRegularSquare, err)
		}
		m, err := r.s.Matrix(n, n)
		if err != nil {
			return Regular{}, fmt.Errorf("%s: %w", methodRegularSquare, err)
		}

		inv, err := oracle.Inverse(m)
		if errors.Is(err, oracle.ErrSingular) {
			r.rejections++
			continue
		}
		if err != nil {
			return Regular{}, fmt.Errorf("%s: %w", methodRegularSquare, err)
		}

		return Regular{M: m, Inv: inv}, nil
	}

	return Regular{}, fmt.Errorf("%s: %d attempts: %w", methodRegularSquare, r.cfg.retryCap, ErrRetriesExhausted)
}

// DotSize draws s uniformly from [1, maxDotSize] until s is composite.
func (r *Resolver) DotSize() (int, error) {
	for attempt := 0; attempt < r.cfg.retryCap; attempt++ {
		s, err := r.s.Dim(r.cfg.maxDotSize)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodDotSize, err)
		}
		if err = checkComposite(s); err != nil {
			r.rejections++
			continue
		}

		return s, nil
	}

	return 0, fmt.Errorf("%s: %d attempts: %w", methodDotSize, r.cfg.retryCap, ErrRetriesExhausted)
}

// checkComposite returns ErrPrimeSize unless s is composite.
func checkComposite(s int) error {
	if !IsComposite(s) {
		return fmt.Errorf("size %d: %w", s, ErrPrimeSize)
	}

	return nil
}

// DotPair picks a composite size s, its divisor list, and two divisors n and m
// independently (repetition allowed), then samples Op1 as (n, s/n) and Op2 as
// (m, s/m).
func (r *Resolver) DotPair() (DotOperands, error) {
	size, err := r.DotSize()
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}
	divs, err := Divisors(size)
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}

	n, err := r.s.Pick(divs)
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}
	m, err := r.s.Pick(divs)
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}

	return r.DotPairFor(size, divs, n, m)
}

// DotPairFor samples the two operands for an already chosen size and divisors.
// n and m must divide size.
func (r *Resolver) DotPairFor(size int, divs []int, n, m int) (DotOperands, error) {
	if n < 1 || m < 1 || size%n != 0 || size%m != 0 {
		return DotOperands{}, fmt.Errorf("%s: %d,%d do not divide %d: %w", methodDotPair, n, m, size, matrix.ErrDimensionMismatch)
	}

	op1, err := r.s.Matrix(n, size/n)
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}
	op2, err := r.s.Matrix(m, size/m)
	if err != nil {
		return DotOperands{}, fmt.Errorf("%s: %w", methodDotPair, err)
	}

	return DotOperands{Size: size, Divisors: divs, N: n, M: m, Op1: op1, Op2: op2}, nil
}

// AnyShape samples a matrix with rows and cols each drawn from [1, maxDim].
func (r *Resolver) AnyShape() (*matrix.Dense, error) {
	rows, cols, err := r.shape()
	if err != nil {
		return nil, err
	}

	return r.s.Matrix(rows, cols)
}

// SameShapePair samples two matrices sharing one random shape.
func (r *Resolver) SameShapePair() (*matrix.Dense, *matrix.Dense, error) {
	rows, cols, err := r.shape()
	if err != nil {
		return nil, nil, err
	}
	a, err := r.s.Matrix(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.s.Matrix(rows, cols)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// ProductPair samples a (r, k) and a (k, c) matrix.
func (r *Resolver) ProductPair() (*matrix.Dense, *matrix.Dense, error) {
	rows, inner, err := r.shape()
	if err != nil {
		return nil, nil, err
	}
	cols, err := r.s.Dim(r.cfg.maxDim)
	if err != nil {
		return nil, nil, err
	}
	a, err := r.s.Matrix(rows, inner)
	if err != nil {
		return nil, nil, err
	}
	b, err := r.s.Matrix(inner, cols)
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Scalar returns an integer from the sampler's entry range.
func (r *Resolver) Scalar() int64 {
	return r.s.Scalar()
}

func (r *Resolver) shape() (int, int, error) {
	rows, err := r.s.Dim(r.cfg.maxDim)
	if err != nil {
		return 0, 0, err
	}
	cols, err := r.s.Dim(r.cfg.maxDim)
	if err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}
