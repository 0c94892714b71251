// SPDX-License-Identifier: MIT
// Package: sampler
//
// errors.go - sentinel errors for the sampler package.
// Callers MUST use errors.Is(err, ErrX); context is attached with %w.

package sampler

import "errors"

// ErrEmptyRange indicates a half-open integer range [low, high) with low >= high.
var ErrEmptyRange = errors.New("sampler: empty range")

// ErrBadDimension indicates a non-positive row/column count or dimension bound.
// Matrix-shape failures additionally wrap matrix.ErrBadShape.
var ErrBadDimension = errors.New("sampler: dimension must be > 0")

// ErrEmptyChoice indicates Pick was called with no candidates.
var ErrEmptyChoice = errors.New("sampler: nothing to pick from")
