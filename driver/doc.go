// Package driver runs the trial loop for each fixture family and emits whole
// sequences.
//
// For every trial the driver derives a fresh sampler from (seed, family,
// trial index), resolves valid inputs, asks the oracle for the expected
// values, and keeps the record. Because each trial owns its random stream, a
// sequence is byte-identical for a given seed whether it is generated by one
// worker or many.
//
// Emission is atomic: a family's sequence is fully generated and rendered
// before a single byte reaches the destination, so a failure never leaves a
// truncated fixture file behind.
package driver
