// Package sampler draws random bounded-integer matrices from an explicit,
// reproducible random source.
//
// A Sampler owns one *rand.Rand. Nothing in this package touches the global
// math/rand state: the same seed always yields the same sequence of matrices,
// which is what lets regenerated fixtures come out byte-identical.
//
// Concurrency:
//   - A Sampler is NOT goroutine-safe. Use Derive to create independent,
//     reproducible streams for workers or per-trial generation.
package sampler
