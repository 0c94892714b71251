// Package cmatfixture generates randomized, oracle-verified test fixtures for a
// C matrix library and renders them as C headers.
//
// What is cmatfixture?
//
//	A deterministic generator that, for each operation family, samples
//	operands, computes the exact answer, and emits a static initializer
//	array the C test suite iterates over:
//		• det, dot, inverse, inverse_precise, mul, sub, transpose
//		• product and add for the remaining binary kernels
//
// Everything is organized under small subpackages:
//
//	matrix/     - immutable exact-rational Dense value and shape-checked kernels
//	sampler/    - seeded random integers, dimensions and matrices
//	constraint/ - rejection sampling: regular squares, composite dot sizes
//	oracle/     - exact determinant, inverse, inner product and arithmetic
//	fixture/    - family kinds and per-family record construction
//	serialize/  - C header layouts and fixed-width numeric fields
//	driver/     - concurrent trial loop with atomic emission
//	cmd/cmatgen - command line front end
//
// Quick example:
//
//	cmatgen generate det inverse --seed 42 -o tests/
//
// writes tests/test_det.h and tests/test_inverse.h; the same seed always
// reproduces the same bytes.
package cmatfixture
