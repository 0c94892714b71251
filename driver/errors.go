// SPDX-License-Identifier: MIT
// Package: driver
//
// errors.go - sentinel errors for the driver package.

package driver

import "errors"

// ErrGeneration wraps any failure that aborts a family's sequence.
// The underlying cause (e.g. constraint.ErrRetriesExhausted) stays matchable
// with errors.Is.
var ErrGeneration = errors.New("driver: generation failed")

// ErrNoFamilies indicates EmitAll was called without families.
var ErrNoFamilies = errors.New("driver: no families requested")
