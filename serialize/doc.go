// Package serialize renders fixture sequences as C source: a typedef for the
// matrix block, a static array-of-records literal, and one initializer per
// record.
//
// Numbers use fixed printf-style fields chosen per family (Layout). Integer
// fields match C's "% Nd"; fixed-point fields match "% W.Pf" and are produced
// from the exact rational value, rounded to nearest with halves away from
// zero, so 30-decimal outputs are the true decimal expansion rather than the
// digits of a float64 approximation.
//
// The byte layout is a compatibility surface: the consuming test suite is
// compiled from it, so whitespace, separators and field widths are fixed.
package serialize
