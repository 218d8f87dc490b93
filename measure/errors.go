// SPDX-License-Identifier: MIT
// Package measure: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Operations attach context by wrapping ("Add: %w"); sentinels are
//     never redefined with formatted strings.
//   - No operation panics on user-triggered conditions.
//   - Advisory (mathematically dubious but valid) situations are not
//     errors at all: they succeed and warn through the advisory logger.
package measure

import "errors"

// ErrTypeMismatch indicates an Operand kind the operation does not
// define: e.g. adding a Number to an Uncertainty, or handing a
// Measurement where plain arithmetic was meant. Construct the right
// operand kind, or use the *WithCorrelation form for correlated
// same-kind combinations.
var ErrTypeMismatch = errors.New("measure: operand type mismatch")

// ErrShapeMismatch indicates an illegal scalar/array combination: two
// array forms of different lengths, an array uncertainty paired with a
// shorter or longer center array, appending an array form where a
// scalar form is required, or vice versa.
var ErrShapeMismatch = errors.New("measure: scalar/array shape mismatch")

// ErrConversionMismatch indicates a conversion of an array form with
// length ≠ 1 to a scalar value. Single-element array forms convert
// fine; anything longer has no scalar meaning.
var ErrConversionMismatch = errors.New("measure: cannot convert array form to a scalar")

// ErrIndexOutOfRange indicates an element index outside the array
// form's bounds. Public indexers return it, they never panic.
var ErrIndexOutOfRange = errors.New("measure: index out of range")
