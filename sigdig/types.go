// SPDX-License-Identifier: MIT
// Package sigdig: option types for digit selection.
package sigdig

// Options configures significant-digit selection.
//
//   - CarryCorrection — after the leading-digit-1 rule keeps an extra
//     digit, re-round and check whether the carry pushed "1.x" up to
//     exactly "2.0"; if so the extra digit is dropped again
//     (1.96 → "2" instead of "2.0"). On by default.
//
// Both behaviors exist in the wild; the corrected one is the default
// because it never quotes a trailing digit that the rounding itself
// destroyed.
type Options struct {
	CarryCorrection bool
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{CarryCorrection: true}
}
