// Package fixture defines the operation families and their test-case records.
//
// Kind is the tagged variant over families; every family has one concrete
// Record type holding its inputs and the oracle-computed expected outputs.
// Generate dispatches on Kind: it asks the constraint resolver for valid
// inputs and the oracle for the expected values, and returns one Record.
//
// Records are built once per trial, rendered, and dropped; nothing is shared
// between trials.
package fixture
