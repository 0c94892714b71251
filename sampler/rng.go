// Package sampler - RNG utilities.
//
// This file centralizes deterministic random generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: derived streams depend only on (seed, stream id), never on
//     how many values a sibling stream has consumed.
package sampler

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(normalizeSeed(seed)))
}

// normalizeSeed applies the seed==0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64-style finalizer; small input changes produce well-distributed outputs.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
