// Package sigdig selects significant digits for uncertainty display and
// rounds/formats magnitudes accordingly.
//
// The convention implemented here is the standard lab-report rule: an
// uncertainty is quoted to one significant digit, unless that digit is 1,
// in which case one extra digit is kept ("1.x" carries less information
// than "9.x"). The package answers one question — to how many fractional
// digits should this magnitude be rounded — and provides rounding and
// string rendering built on that answer:
//
//	sigdig.Format(9123)   // "9000"
//	sigdig.Format(1.1243) // "1.1"
//	sigdig.Format(0.104)  // "0.10"
//	sigdig.Format(1.96)   // "2"
//
// The 1.96 case shows the carry correction: after deciding to keep two
// digits, rounding produces 2.0, whose leading digit is no longer 1, so
// the extra digit is dropped again. The correction is on by default and
// selectable via Options for callers that want the uncorrected variant.
//
// Digit counts may be negative: Digits(9123) = -3 means "round to the
// nearest 10³", and such values render as integers with the low-order
// digits zeroed.
//
// The functions here operate on bare float64 magnitudes and parallel
// slices; the measure package wraps them behind the Uncertainty and
// Measurement value types.
package sigdig
