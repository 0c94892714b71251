// SPDX-License-Identifier: MIT
// Package: constraint
//
// errors.go - sentinel errors for the constraint package.

package constraint

import "errors"

// ErrPrimeSize marks a drawn dot-product size that is prime (or 1) and so
// cannot be split into two different operand shapes. Recoverable: the
// resolver resamples and never returns it to callers.
var ErrPrimeSize = errors.New("constraint: dot size is not composite")

// ErrRetriesExhausted indicates that rejection sampling hit its retry cap
// without producing a valid draw. Fatal for the trial sequence.
var ErrRetriesExhausted = errors.New("constraint: retry cap exhausted")

// ErrBadSize indicates a non-positive integer passed to the factorization helpers.
var ErrBadSize = errors.New("constraint: size must be > 0")
