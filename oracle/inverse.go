// SPDX-License-Identifier: MIT
// Package: oracle
//
// inverse.go - exact inverse via Gauss-Jordan elimination.

package oracle

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cmatfixture/matrix"
)

// Inverse returns M⁻¹ for a square, non-singular M.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Prepare): build the augmented n×2n matrix [M | I].
//	Stage 3 (Execute): for each column k pick the largest-magnitude pivot at or
//	        below row k (ErrSingular if the column is zero), swap it into place,
//	        normalize the pivot row, and eliminate column k from every other row.
//	Stage 4 (Finalize): the right half now holds M⁻¹.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
// Complexity: O(n³) rational operations, O(n²) memory.
func Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}
	n := m.Rows()
	w := 2 * n

	// Stage 2: [M | I]
	src := m.Values()
	aug := make([]*big.Rat, n*w)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug[i*w+j] = src[i*n+j]
			aug[i*w+n+j] = new(big.Rat)
		}
		aug[i*w+n+i].SetInt64(1)
	}

	// Stage 3: eliminate
	var (
		inv    = new(big.Rat)
		factor = new(big.Rat)
		term   = new(big.Rat)
	)
	for k := 0; k < n; k++ {
		p := pivotRow(aug, n, w, k, k)
		if p < 0 {
			return nil, fmt.Errorf("%s: zero pivot column %d: %w", opInverse, k, ErrSingular)
		}
		if p != k {
			swapRows(aug, w, p, k)
		}

		inv.Inv(aug[k*w+k])
		for j := k; j < w; j++ {
			aug[k*w+j].Mul(aug[k*w+j], inv)
		}

		for i := 0; i < n; i++ {
			if i == k || aug[i*w+k].Sign() == 0 {
				continue
			}
			factor.Set(aug[i*w+k])
			for j := k; j < w; j++ {
				term.Mul(factor, aug[k*w+j])
				aug[i*w+j].Sub(aug[i*w+j], term)
			}
		}
	}

	// Stage 4: right half
	out := make([]*big.Rat, n*n)
	for i := 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return matrix.NewDense(n, n, out)
}
