// SPDX-License-Identifier: MIT
// Package: fixture
//
// generate.go - resolver → oracle glue, one function per family.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/cmatfixture/constraint"
	"github.com/katalvlaran/cmatfixture/oracle"
)

// Generate produces one record of family k using r for inputs.
//
// Errors: ErrUnknownKind; constraint.ErrRetriesExhausted; shape errors from
// the oracle (programmer errors, never expected for resolver output).
func Generate(k Kind, r *constraint.Resolver) (Record, error) {
	var (
		rec Record
		err error
	)
	switch k {
	case Determinant:
		rec, err = newDeterminant(r)
	case Dot:
		rec, err = newDot(r)
	case Inverse:
		rec, err = newInverse(r, false)
	case InversePrecise:
		rec, err = newInverse(r, true)
	case Mul:
		rec, err = newMul(r)
	case Sub, Add, Product:
		rec, err = newBinary(r, k)
	case Transpose:
		rec, err = newTranspose(r)
	default:
		return nil, fmt.Errorf("Generate(%v): %w", k, ErrUnknownKind)
	}
	if err != nil {
		return nil, fmt.Errorf("Generate(%v): %w", k, err)
	}

	return rec, nil
}

func newDeterminant(r *constraint.Resolver) (Record, error) {
	reg, err := r.RegularSquare()
	if err != nil {
		return nil, err
	}
	det, err := oracle.Determinant(reg.M)
	if err != nil {
		return nil, err
	}

	return DeterminantRecord{Op: reg.M, Ans: det}, nil
}

func newDot(r *constraint.Resolver) (Record, error) {
	ops, err := r.DotPair()
	if err != nil {
		return nil, err
	}
	ans, err := oracle.InnerProduct(ops.Op1, ops.Op2)
	if err != nil {
		return nil, err
	}

	return DotRecord{Op1: ops.Op1, Op2: ops.Op2, Ans: ans}, nil
}

// newInverse reuses the inverse computed while proving regularity.
func newInverse(r *constraint.Resolver, precise bool) (Record, error) {
	reg, err := r.RegularSquare()
	if err != nil {
		return nil, err
	}

	return InverseRecord{Precise: precise, Op: reg.M, Ans: reg.Inv}, nil
}

func newMul(r *constraint.Resolver) (Record, error) {
	op1, err := r.AnyShape()
	if err != nil {
		return nil, err
	}
	op2 := r.Scalar()
	ans, err := oracle.ScalarMultiply(op1, op2)
	if err != nil {
		return nil, err
	}

	return MulRecord{Op1: op1, Op2: op2, Ans: ans}, nil
}

func newBinary(r *constraint.Resolver, k Kind) (Record, error) {
	if k == Product {
		a, b, err := r.ProductPair()
		if err != nil {
			return nil, err
		}
		ans, err := oracle.Multiply(a, b)
		if err != nil {
			return nil, err
		}

		return BinaryRecord{Family: k, Op1: a, Op2: b, Ans: ans}, nil
	}

	a, b, err := r.SameShapePair()
	if err != nil {
		return nil, err
	}
	op := oracle.Subtract
	if k == Add {
		op = oracle.Add
	}
	ans, err := op(a, b)
	if err != nil {
		return nil, err
	}

	return BinaryRecord{Family: k, Op1: a, Op2: b, Ans: ans}, nil
}

func newTranspose(r *constraint.Resolver) (Record, error) {
	op, err := r.AnyShape()
	if err != nil {
		return nil, err
	}
	ans, err := oracle.Transpose(op)
	if err != nil {
		return nil, err
	}

	return TransposeRecord{Op: op, Ans: ans}, nil
}
