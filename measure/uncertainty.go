// SPDX-License-Identifier: MIT
// Package measure: the Uncertainty value type.
package measure

import (
	"fmt"

	"github.com/measurelab/uncert/internal/vec"
	"github.com/measurelab/uncert/sigdig"
)

// Uncertainty is a non-negative uncertainty magnitude, scalar-form or
// array-form. Negative inputs are normalized to their absolute value at
// construction, and every operation preserves non-negativity. All
// arithmetic returns a new instance; the zero value is a usable
// scalar-form zero magnitude.
type Uncertainty struct {
	mag   []float64
	array bool
}

// NewUncertainty returns a scalar-form Uncertainty with magnitude |m|.
func NewUncertainty(m float64) Uncertainty {
	return Uncertainty{mag: vec.Abs([]float64{m})}
}

// NewUncertaintyArray returns an array-form Uncertainty with magnitudes
// |ms[i]|. The input is copied.
func NewUncertaintyArray(ms []float64) Uncertainty {
	return Uncertainty{mag: vec.Abs(ms), array: true}
}

// UncertaintyOf constructs an Uncertainty from an Operand decided at the
// boundary: Number → scalar form, Sequence → array form, Sigma →
// pass-through (no reconversion). Term is not an uncertainty and fails
// with ErrTypeMismatch.
func UncertaintyOf(op Operand) (Uncertainty, error) {
	switch op.kind {
	case kindNumber:
		return NewUncertainty(op.num), nil
	case kindSequence:
		return NewUncertaintyArray(op.seq), nil
	case kindSigma:
		return op.sig, nil
	default:
		return Uncertainty{}, fmt.Errorf("UncertaintyOf: %s operand: %w", op.kind, ErrTypeMismatch)
	}
}

// UncertaintyFromSimpleList assembles an array-form Uncertainty from
// scalar-form elements. Any array-form item fails with ErrShapeMismatch.
func UncertaintyFromSimpleList(items []Uncertainty) (Uncertainty, error) {
	mags := make([]float64, len(items))
	for i, it := range items {
		if it.array {
			return Uncertainty{}, fmt.Errorf("UncertaintyFromSimpleList: item %d is array-form: %w", i, ErrShapeMismatch)
		}
		mags[i] = it.values()[0]
	}
	return Uncertainty{mag: mags, array: true}, nil
}

// values returns the backing magnitudes, treating the zero value as a
// scalar zero. Callers must not mutate the result.
func (u Uncertainty) values() []float64 {
	if u.mag == nil {
		return []float64{0}
	}
	return u.mag
}

// IsArray reports whether u is array-form.
func (u Uncertainty) IsArray() bool { return u.array }

// Len returns the element count: 1 for scalar form.
func (u Uncertainty) Len() int { return len(u.values()) }

// Magnitude converts u to a single float64. Valid for scalar form and
// single-element array form; longer arrays fail with
// ErrConversionMismatch.
func (u Uncertainty) Magnitude() (float64, error) {
	v := u.values()
	if len(v) != 1 {
		return 0, fmt.Errorf("Magnitude: %d elements: %w", len(v), ErrConversionMismatch)
	}
	return v[0], nil
}

// Int converts u to an int, truncating toward zero. Same form rules as
// Magnitude.
func (u Uncertainty) Int() (int, error) {
	v, err := u.Magnitude()
	if err != nil {
		return 0, fmt.Errorf("Int: %w", err)
	}
	return int(v), nil
}

// Magnitudes returns a copy of the magnitudes; scalar form yields a
// one-element slice.
func (u Uncertainty) Magnitudes() []float64 {
	return vec.Clone(u.values())
}

// At returns element i of an array-form Uncertainty as a scalar form.
// Scalar forms fail with ErrShapeMismatch.
func (u Uncertainty) At(i int) (Uncertainty, error) {
	if !u.array {
		return Uncertainty{}, fmt.Errorf("At: scalar form: %w", ErrShapeMismatch)
	}
	if i < 0 || i >= len(u.mag) {
		return Uncertainty{}, fmt.Errorf("At(%d): len %d: %w", i, len(u.mag), ErrIndexOutOfRange)
	}
	return Uncertainty{mag: []float64{u.mag[i]}}, nil
}

// AsSimpleList flattens u into scalar-form elements; a scalar form
// yields itself as the only element.
func (u Uncertainty) AsSimpleList() []Uncertainty {
	vs := u.values()
	out := make([]Uncertainty, len(vs))
	for i, v := range vs {
		out[i] = Uncertainty{mag: []float64{v}}
	}
	return out
}

// SignificantDigit returns the fractional-digit count for rounding u per
// the significant-digit rule. Same form rules as Magnitude.
func (u Uncertainty) SignificantDigit() (int, error) {
	v, err := u.Magnitude()
	if err != nil {
		return 0, fmt.Errorf("SignificantDigit: %w", err)
	}
	return sigdig.Digits(v), nil
}

// SignificantDigits applies the significant-digit selector elementwise,
// with no cross-element interaction.
func (u Uncertainty) SignificantDigits() []int {
	vs := u.values()
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = sigdig.Digits(v)
	}
	return out
}

// Rounded returns u with every magnitude rounded at its own
// significant-digit count. Display-oriented; arithmetic should stay on
// the unrounded value.
func (u Uncertainty) Rounded() Uncertainty {
	vs := u.values()
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i], _ = sigdig.RoundUncert(v)
	}
	return Uncertainty{mag: out, array: u.array}
}
