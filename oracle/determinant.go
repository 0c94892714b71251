// SPDX-License-Identifier: MIT
// Package: oracle
//
// determinant.go - exact determinant.
//
// Integer input (the only kind the sampler produces) goes through Bareiss
// fraction-free elimination: every intermediate stays an integer and every
// division is exact, so the result is the exact integer determinant. Rational
// input falls back to Gaussian elimination over big.Rat.

package oracle

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cmatfixture/matrix"
)

const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opInner       = "InnerProduct"
)

// Determinant returns det(m) exactly.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped with the op tag).
// Complexity: O(n³) big-number operations.
func Determinant(m *matrix.Dense) (*big.Rat, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	if ints, err := m.Ints(); err == nil {
		return new(big.Rat).SetInt(bareiss(ints, m.Rows())), nil
	}

	return gaussDeterminant(m.Values(), m.Rows()), nil
}

// IsRegular reports whether m is square with a non-zero determinant.
func IsRegular(m *matrix.Dense) bool {
	d, err := Determinant(m)
	if err != nil {
		return false
	}

	return d.Sign() != 0
}

// bareiss computes the determinant of an n×n integer matrix in row-major order.
//
// Stage 1: copy into big.Int working rows.
// Stage 2: for each k, pick the first non-zero pivot at or below row k
// (swap flips the sign); if none, det is 0.
// Stage 3: a[i][j] = (a[i][j]*a[k][k] − a[i][k]*a[k][j]) / prev, exact division.
func bareiss(vals []int64, n int) *big.Int {
	a := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		a[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			a[i][j] = big.NewInt(vals[i*n+j])
		}
	}

	var (
		sign = 1
		prev = big.NewInt(1)
		t1   = new(big.Int)
		t2   = new(big.Int)
	)
	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			swap := -1
			for i := k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return new(big.Int)
			}
			a[k], a[swap] = a[swap], a[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(a[i][j], a[k][k])
				t2.Mul(a[i][k], a[k][j])
				t1.Sub(t1, t2)
				a[i][j].Quo(t1, prev) // exact by Sylvester's identity
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det
}

// gaussDeterminant eliminates below the diagonal over big.Rat and multiplies
// the pivots. vals is consumed.
func gaussDeterminant(vals []*big.Rat, n int) *big.Rat {
	det := big.NewRat(1, 1)
	factor := new(big.Rat)
	term := new(big.Rat)

	for k := 0; k < n; k++ {
		p := pivotRow(vals, n, n, k, k)
		if p < 0 {
			return new(big.Rat)
		}
		if p != k {
			swapRows(vals, n, p, k)
			det.Neg(det)
		}
		pivot := vals[k*n+k]
		det.Mul(det, pivot)
		for i := k + 1; i < n; i++ {
			if vals[i*n+k].Sign() == 0 {
				continue
			}
			factor.Quo(vals[i*n+k], pivot)
			for j := k; j < n; j++ {
				term.Mul(factor, vals[k*n+j])
				vals[i*n+j].Sub(vals[i*n+j], term)
			}
		}
	}

	return det
}

// pivotRow returns the row index in [from, rows) with the largest |value| in
// column col of a row-major rows×width slice, or -1 if the column is all zero.
func pivotRow(vals []*big.Rat, rows, width, from, col int) int {
	best := -1
	var bestAbs, cur big.Rat
	for i := from; i < rows; i++ {
		v := vals[i*width+col]
		if v.Sign() == 0 {
			continue
		}
		cur.Abs(v)
		if best < 0 || cur.Cmp(&bestAbs) > 0 {
			best = i
			bestAbs.Set(&cur)
		}
	}

	return best
}

// swapRows exchanges rows r1 and r2 of a row-major slice with the given width.
func swapRows(vals []*big.Rat, width, r1, r2 int) {
	for j := 0; j < width; j++ {
		vals[r1*width+j], vals[r2*width+j] = vals[r2*width+j], vals[r1*width+j]
	}
}
