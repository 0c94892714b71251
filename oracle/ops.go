// SPDX-License-Identifier: MIT
// Package: oracle
//
// ops.go - inner product and the elementwise/product oracles.

package oracle

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cmatfixture/matrix"
)

// InnerProduct returns Σ a[i]·b[i] over the row-major flattening of a and b.
// Shapes may differ; only the flattened lengths must agree.
//
// Errors: matrix.ErrNilMatrix, ErrLengthMismatch.
// Complexity: O(len).
func InnerProduct(a, b *matrix.Dense) (*big.Rat, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opInner, matrix.ErrNilMatrix)
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%s: %d vs %d values: %w", opInner, a.Len(), b.Len(), ErrLengthMismatch)
	}

	av, bv := a.Values(), b.Values()
	sum := new(big.Rat)
	term := new(big.Rat)
	for i := range av {
		term.Mul(av[i], bv[i])
		sum.Add(sum, term)
	}

	return sum, nil
}

// Multiply returns the matrix product a×b (a.Cols() must equal b.Rows()).
func Multiply(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Mul(a, b) }

// ScalarMultiply returns s·m.
func ScalarMultiply(m *matrix.Dense, s int64) (*matrix.Dense, error) { return matrix.ScaleInt(m, s) }

// Subtract returns a − b for same-shape operands.
func Subtract(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Sub(a, b) }

// Add returns a + b for same-shape operands.
func Add(a, b *matrix.Dense) (*matrix.Dense, error) { return matrix.Add(a, b) }

// Transpose returns mᵀ.
func Transpose(m *matrix.Dense) (*matrix.Dense, error) { return matrix.Transpose(m) }
