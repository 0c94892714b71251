// SPDX-License-Identifier: MIT
// Package: fixture
//
// record.go - one concrete record type per family shape.

package fixture

import (
	"math/big"

	"github.com/katalvlaran/cmatfixture/matrix"
)

// Record is one generated test case. The concrete type is determined by Kind.
type Record interface {
	Kind() Kind
}

// DeterminantRecord: input matrix and its determinant.
type DeterminantRecord struct {
	Op  *matrix.Dense
	Ans *big.Rat
}

// Kind implements Record.
func (DeterminantRecord) Kind() Kind { return Determinant }

// DotRecord: two operands of equal flattened length and their inner product.
type DotRecord struct {
	Op1, Op2 *matrix.Dense
	Ans      *big.Rat
}

// Kind implements Record.
func (DotRecord) Kind() Kind { return Dot }

// InverseRecord: a regular matrix and its inverse. Precise selects the
// high-precision family, which differs only in layout.
type InverseRecord struct {
	Precise bool
	Op, Ans *matrix.Dense
}

// Kind implements Record.
func (r InverseRecord) Kind() Kind {
	if r.Precise {
		return InversePrecise
	}

	return Inverse
}

// MulRecord: a matrix, an integer scalar, and their product.
type MulRecord struct {
	Op1 *matrix.Dense
	Op2 int64
	Ans *matrix.Dense
}

// Kind implements Record.
func (MulRecord) Kind() Kind { return Mul }

// BinaryRecord: two matrix operands and a matrix result. Family is Sub,
// Product or Add.
type BinaryRecord struct {
	Family        Kind
	Op1, Op2, Ans *matrix.Dense
}

// Kind implements Record.
func (r BinaryRecord) Kind() Kind { return r.Family }

// TransposeRecord: a matrix and its transpose.
type TransposeRecord struct {
	Op, Ans *matrix.Dense
}

// Kind implements Record.
func (TransposeRecord) Kind() Kind { return Transpose }
