// SPDX-License-Identifier: MIT
// Package: oracle
//
// errors.go - sentinel errors for the oracle package.
// Shape problems surface as the matrix package sentinels (ErrNonSquare,
// ErrNilMatrix, ErrDimensionMismatch) wrapped with the oracle operation tag.

package oracle

import "errors"

// ErrSingular is returned by Inverse when no non-zero pivot exists in a column.
// The constraint resolver treats it as "resample", never as a fatal error.
var ErrSingular = errors.New("oracle: singular matrix")

// ErrLengthMismatch indicates InnerProduct operands whose flattened lengths differ.
var ErrLengthMismatch = errors.New("oracle: operand lengths differ")
