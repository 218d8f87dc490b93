// SPDX-License-Identifier: MIT
// Package measure: Uncertainty arithmetic.
package measure

import (
	"fmt"
	"math"

	"github.com/measurelab/uncert/internal/vec"
)

// quadrature is the one primitive combination rule:
// √(a² + b² + 2abr). r=0 is independence, r=1 collapses to a+b,
// r=-1 models full anti-correlation.
func quadrature(r float64) func(a, b float64) float64 {
	return func(a, b float64) float64 {
		return math.Sqrt(a*a + b*b + 2*a*b*r)
	}
}

// combineShapes rejects two array forms of different lengths. Scalar
// against array always broadcasts.
func combineShapes(a, b Uncertainty) error {
	if a.array && b.array && a.Len() != b.Len() {
		return fmt.Errorf("lengths %d and %d: %w", a.Len(), b.Len(), ErrShapeMismatch)
	}
	return nil
}

// AddWithCorrelation combines u and other in quadrature with correlation
// coefficient r, elementwise, broadcasting a scalar form across an array
// form. Subtraction of the owning measurements uses the same combinator;
// variances add either way.
func (u Uncertainty) AddWithCorrelation(other Uncertainty, r float64) (Uncertainty, error) {
	if err := combineShapes(u, other); err != nil {
		return Uncertainty{}, fmt.Errorf("AddWithCorrelation: %w", err)
	}
	out := vec.Apply2(u.values(), other.values(), quadrature(r))
	return Uncertainty{mag: out, array: u.array || other.array}, nil
}

// Add combines u with a Sigma operand assuming independence (r = 0).
// Only another Uncertainty can be added to an Uncertainty; any other
// operand kind fails with ErrTypeMismatch — wrap exact values in a
// Measurement, or use AddWithCorrelation for correlated combination.
func (u Uncertainty) Add(op Operand) (Uncertainty, error) {
	if op.kind != kindSigma {
		return Uncertainty{}, fmt.Errorf("Add: %s operand, need Sigma: %w", op.kind, ErrTypeMismatch)
	}
	return u.AddWithCorrelation(op.sig, 0)
}

// Scale returns u scaled by |k|. Magnitudes stay non-negative always, so
// a negative factor scales by its absolute value.
func (u Uncertainty) Scale(k float64) Uncertainty {
	return Uncertainty{mag: vec.Abs(vec.Scale(k, u.values())), array: u.array}
}

// Div returns u scaled by 1/|k|. Division by zero propagates +Inf.
// Dividing by another Uncertainty is undefined in this model; only
// measurement ratios use relative uncertainty.
func (u Uncertainty) Div(k float64) Uncertainty {
	return u.Scale(1 / k)
}

// FloorDiv returns ⌊u/|k|⌋ elementwise. It succeeds, but the floor of a
// magnitude is rarely a meaningful uncertainty, so an advisory warning
// is emitted.
func (u Uncertainty) FloorDiv(k float64) Uncertainty {
	advise(adviseFloor)
	return Uncertainty{mag: vec.Floor(vec.Abs(vec.Scale(1/k, u.values()))), array: u.array}
}

// Floor returns ⌊u⌋ elementwise, with the same advisory as FloorDiv.
func (u Uncertainty) Floor() Uncertainty {
	advise(adviseFloor)
	return Uncertainty{mag: vec.Floor(u.values()), array: u.array}
}

// Cmp compares scalar-form magnitudes: -1, 0 or +1 as u is smaller,
// equal or larger. The operand must be a Number or Sigma; array forms
// fail with ErrConversionMismatch.
func (u Uncertainty) Cmp(op Operand) (int, error) {
	var other float64
	switch op.kind {
	case kindNumber:
		other = op.num
	case kindSigma:
		v, err := op.sig.Magnitude()
		if err != nil {
			return 0, fmt.Errorf("Cmp: %w", err)
		}
		other = v
	default:
		return 0, fmt.Errorf("Cmp: %s operand, need Number or Sigma: %w", op.kind, ErrTypeMismatch)
	}
	v, err := u.Magnitude()
	if err != nil {
		return 0, fmt.Errorf("Cmp: %w", err)
	}
	switch {
	case v < other:
		return -1, nil
	case v > other:
		return 1, nil
	default:
		return 0, nil
	}
}
