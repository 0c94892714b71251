// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil checks.
//  - Keep kernels minimal by delegating validation here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for a product a×b.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}
