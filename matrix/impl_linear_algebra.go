// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense values: element-wise
// addition and subtraction, matrix multiplication, transpose, and scalar
// scaling. All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches. Operands are never mutated; every kernel
// allocates a fresh result.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a freshly allocated Dense.
//
// Complexity: Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, negate bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newZero(a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		if negate {
			res.data[idx].Sub(a.data[idx], b.data[idx])
		} else {
			res.data[idx].Add(a.data[idx], b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j accumulation over the row-major backing slices, skipping
//     zero entries of A.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
// Complexity: Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newZero(aRows, bCols)

	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 *big.Rat
		term                               = new(big.Rat) // scratch product, reused
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av.Sign() == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				term.Mul(av, b.data[rowOffsetB+j])
				res.data[rowOffsetR+j].Add(res.data[rowOffsetR+j], term)
			}
		}
	}

	return res, nil
}

// Transpose returns a new Dense with rows and columns swapped: C[j,i] = M[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]*big.Rat, rows*cols)}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = new(big.Rat).Set(m.data[baseSrc+j])
		}
	}

	return res, nil
}

// Scale returns alpha·M as a new Dense.
// Errors: ErrNilMatrix (nil matrix or nil alpha).
// Complexity: O(r*c).
func Scale(m *Dense, alpha *big.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if alpha == nil {
		return nil, matrixErrorf(opScale, fmt.Errorf("alpha: %w", ErrNilMatrix))
	}

	res := newZero(m.r, m.c)
	for idx := range res.data {
		res.data[idx].Mul(m.data[idx], alpha)
	}

	return res, nil
}

// ScaleInt is Scale with an integer factor.
func ScaleInt(m *Dense, alpha int64) (*Dense, error) {
	return Scale(m, new(big.Rat).SetInt64(alpha))
}
