// SPDX-License-Identifier: MIT
// Package measure: Measurement arithmetic.
//
// Every operation here is a pure function over its operands: a new
// Measurement comes back, nothing is mutated. Operand kinds are decided
// once per operation; undefined kinds return ErrTypeMismatch. Shape
// rules apply before any math: two array forms must have equal lengths,
// a scalar form broadcasts across an array form.
package measure

import (
	"fmt"
	"math"

	"github.com/measurelab/uncert/internal/vec"
)

// centerShapes rejects two array-form centers of different lengths.
func centerShapes(a, b Measurement) error {
	if a.array && b.array && a.Len() != b.Len() {
		return fmt.Errorf("lengths %d and %d: %w", a.Len(), b.Len(), ErrShapeMismatch)
	}
	return nil
}

// seqShape rejects a Sequence operand whose length differs from an
// array-form receiver's.
func (m Measurement) seqShape(vals []float64, array bool) error {
	if m.array && array && m.Len() != len(vals) {
		return fmt.Errorf("lengths %d and %d: %w", m.Len(), len(vals), ErrShapeMismatch)
	}
	return nil
}

// relative returns |uncert/center| elementwise with broadcasting: the
// relative uncertainty used to propagate error through × and ÷.
func relative(u Uncertainty, centers []float64) []float64 {
	return vec.Apply2(u.values(), centers, func(s, c float64) float64 {
		return math.Abs(s / c)
	})
}

// AddWithCorrelation returns m + other with correlation coefficient r:
// centers add, uncertainties combine in quadrature.
func (m Measurement) AddWithCorrelation(other Measurement, r float64) (Measurement, error) {
	if err := centerShapes(m, other); err != nil {
		return Measurement{}, fmt.Errorf("AddWithCorrelation: %w", err)
	}
	u, err := m.uncert.AddWithCorrelation(other.uncert, r)
	if err != nil {
		return Measurement{}, fmt.Errorf("AddWithCorrelation: %w", err)
	}
	return Measurement{
		center: vec.Add(m.centers(), other.centers()),
		array:  m.array || other.array,
		uncert: u,
	}, nil
}

// SubWithCorrelation returns m − other with correlation coefficient r.
// The uncertainty combinator is the same one addition uses: variances
// add regardless of the sign on the centers.
func (m Measurement) SubWithCorrelation(other Measurement, r float64) (Measurement, error) {
	if err := centerShapes(m, other); err != nil {
		return Measurement{}, fmt.Errorf("SubWithCorrelation: %w", err)
	}
	u, err := m.uncert.AddWithCorrelation(other.uncert, r)
	if err != nil {
		return Measurement{}, fmt.Errorf("SubWithCorrelation: %w", err)
	}
	return Measurement{
		center: vec.Sub(m.centers(), other.centers()),
		array:  m.array || other.array,
		uncert: u,
	}, nil
}

// MulWithCorrelation returns m × other with correlation coefficient r:
// relative uncertainties combine in quadrature, then scale back by the
// new center.
func (m Measurement) MulWithCorrelation(other Measurement, r float64) (Measurement, error) {
	return m.mulDiv(other, r, false, "MulWithCorrelation")
}

// DivWithCorrelation returns m ÷ other with correlation coefficient r,
// propagating relative uncertainty like MulWithCorrelation.
func (m Measurement) DivWithCorrelation(other Measurement, r float64) (Measurement, error) {
	return m.mulDiv(other, r, true, "DivWithCorrelation")
}

func (m Measurement) mulDiv(other Measurement, r float64, div bool, op string) (Measurement, error) {
	if err := centerShapes(m, other); err != nil {
		return Measurement{}, fmt.Errorf("%s: %w", op, err)
	}
	relC := vec.Apply2(relative(m.uncert, m.centers()), relative(other.uncert, other.centers()), quadrature(r))
	var newCenter []float64
	if div {
		newCenter = vec.Div(m.centers(), other.centers())
	} else {
		newCenter = vec.Mul(m.centers(), other.centers())
	}
	array := m.array || other.array
	return Measurement{
		center: newCenter,
		array:  array,
		uncert: Uncertainty{mag: scaleRelative(newCenter, relC), array: array},
	}, nil
}

// scaleRelative turns a combined relative uncertainty back into an
// absolute one: |center · rel| elementwise.
func scaleRelative(centers, rel []float64) []float64 {
	return vec.Apply2(centers, rel, func(c, rl float64) float64 {
		return math.Abs(c * rl)
	})
}

// Add returns m + op assuming independence. Term adds another
// measurement (r = 0; use AddWithCorrelation for correlated operands);
// Number and Sequence add exact values, leaving the uncertainty
// unchanged. Sigma is not addable to a measurement.
func (m Measurement) Add(op Operand) (Measurement, error) {
	switch op.kind {
	case kindTerm:
		return m.AddWithCorrelation(op.term, 0)
	case kindNumber, kindSequence:
		vals, arr := op.numbers()
		if err := m.seqShape(vals, arr); err != nil {
			return Measurement{}, fmt.Errorf("Add: %w", err)
		}
		return Measurement{
			center: vec.Add(m.centers(), vals),
			array:  m.array || arr,
			uncert: m.uncert,
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"Add: %s operand, need Term, Number or Sequence (use AddWithCorrelation for correlated terms): %w",
			op.kind, ErrTypeMismatch)
	}
}

// Sub returns m − op assuming independence; exact operands leave the
// uncertainty unchanged.
func (m Measurement) Sub(op Operand) (Measurement, error) {
	switch op.kind {
	case kindTerm:
		return m.SubWithCorrelation(op.term, 0)
	case kindNumber, kindSequence:
		vals, arr := op.numbers()
		if err := m.seqShape(vals, arr); err != nil {
			return Measurement{}, fmt.Errorf("Sub: %w", err)
		}
		return Measurement{
			center: vec.Sub(m.centers(), vals),
			array:  m.array || arr,
			uncert: m.uncert,
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"Sub: %s operand, need Term, Number or Sequence (use SubWithCorrelation for correlated terms): %w",
			op.kind, ErrTypeMismatch)
	}
}

// SubFrom returns op − m, the reflected form for an exact left operand:
// the center sign flips, the uncertainty is unchanged. For a Term left
// operand call Sub on it directly.
func (m Measurement) SubFrom(op Operand) (Measurement, error) {
	switch op.kind {
	case kindNumber, kindSequence:
		vals, arr := op.numbers()
		if err := m.seqShape(vals, arr); err != nil {
			return Measurement{}, fmt.Errorf("SubFrom: %w", err)
		}
		return Measurement{
			center: vec.Sub(vals, m.centers()),
			array:  m.array || arr,
			uncert: m.uncert,
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"SubFrom: %s operand, need Number or Sequence (call Sub on a Term operand): %w",
			op.kind, ErrTypeMismatch)
	}
}

// Mul returns m × op assuming independence. Exact operands scale both
// center and uncertainty linearly (magnitudes stay non-negative).
func (m Measurement) Mul(op Operand) (Measurement, error) {
	switch op.kind {
	case kindTerm:
		return m.MulWithCorrelation(op.term, 0)
	case kindNumber:
		return Measurement{
			center: vec.Scale(op.num, m.centers()),
			array:  m.array,
			uncert: m.uncert.Scale(op.num),
		}, nil
	case kindSequence:
		if err := m.seqShape(op.seq, true); err != nil {
			return Measurement{}, fmt.Errorf("Mul: %w", err)
		}
		return Measurement{
			center: vec.Mul(m.centers(), op.seq),
			array:  true,
			uncert: Uncertainty{
				mag: vec.Apply2(m.uncert.values(), op.seq, func(s, k float64) float64 {
					return math.Abs(s * k)
				}),
				array: true,
			},
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"Mul: %s operand, need Term, Number or Sequence (use MulWithCorrelation for correlated terms): %w",
			op.kind, ErrTypeMismatch)
	}
}

// Div returns m ÷ op assuming independence. Exact operands divide both
// center and uncertainty.
func (m Measurement) Div(op Operand) (Measurement, error) {
	switch op.kind {
	case kindTerm:
		return m.DivWithCorrelation(op.term, 0)
	case kindNumber:
		return Measurement{
			center: vec.Scale(1/op.num, m.centers()),
			array:  m.array,
			uncert: m.uncert.Div(op.num),
		}, nil
	case kindSequence:
		if err := m.seqShape(op.seq, true); err != nil {
			return Measurement{}, fmt.Errorf("Div: %w", err)
		}
		return Measurement{
			center: vec.Div(m.centers(), op.seq),
			array:  true,
			uncert: Uncertainty{
				mag: vec.Apply2(m.uncert.values(), op.seq, func(s, k float64) float64 {
					return math.Abs(s / k)
				}),
				array: true,
			},
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"Div: %s operand, need Term, Number or Sequence (use DivWithCorrelation for correlated terms): %w",
			op.kind, ErrTypeMismatch)
	}
}

// DivFrom returns op ÷ m, the reflected form for an exact left operand.
// The exact numerator contributes no uncertainty, so the result keeps
// m's relative uncertainty, scaled by the new center.
func (m Measurement) DivFrom(op Operand) (Measurement, error) {
	switch op.kind {
	case kindNumber, kindSequence:
		vals, arr := op.numbers()
		if err := m.seqShape(vals, arr); err != nil {
			return Measurement{}, fmt.Errorf("DivFrom: %w", err)
		}
		newCenter := vec.Div(vals, m.centers())
		array := m.array || arr
		return Measurement{
			center: newCenter,
			array:  array,
			uncert: Uncertainty{
				mag:   scaleRelative(newCenter, relative(m.uncert, m.centers())),
				array: array,
			},
		}, nil
	default:
		return Measurement{}, fmt.Errorf(
			"DivFrom: %s operand, need Number or Sequence (call Div on a Term operand): %w",
			op.kind, ErrTypeMismatch)
	}
}

// FloorDiv returns ⌊center/k⌋ as a plain number: the uncertainty is
// dropped, the result is no longer a Measurement. Scalar-form only; use
// FloorDivAll for array forms.
func (m Measurement) FloorDiv(k float64) (float64, error) {
	c, err := m.Center()
	if err != nil {
		return 0, fmt.Errorf("FloorDiv: %w", err)
	}
	return math.Floor(c / k), nil
}

// FloorDivAll returns ⌊center/k⌋ elementwise as plain numbers.
func (m Measurement) FloorDivAll(k float64) []float64 {
	cs := m.centers()
	out := make([]float64, len(cs))
	for i, c := range cs {
		out[i] = math.Floor(c / k)
	}
	return out
}

// Abs returns |m|: the center's absolute value with the uncertainty
// unchanged.
func (m Measurement) Abs() Measurement {
	return Measurement{center: vec.Abs(m.centers()), array: m.array, uncert: m.uncert}
}

// Tscore returns the statistical separation between m and op:
// |Δcenter| divided by the combined uncertainty of the difference, with
// correlation coefficient r. A Number operand is treated as exact
// (zero uncertainty). Scalar-form only; use TscoreAll for array forms.
//
//	a := measure.NewMeasurement(10, 1)
//	b := measure.NewMeasurement(11, 1)
//	t, _ := a.Tscore(measure.Term(b), 0) // 1/√2
func (m Measurement) Tscore(op Operand, r float64) (float64, error) {
	diff, err := m.tscoreDiff(op, r)
	if err != nil {
		return 0, fmt.Errorf("Tscore: %w", err)
	}
	c, err := diff.Center()
	if err != nil {
		return 0, fmt.Errorf("Tscore (use TscoreAll for array forms): %w", err)
	}
	u, err := diff.uncert.Magnitude()
	if err != nil {
		return 0, fmt.Errorf("Tscore (use TscoreAll for array forms): %w", err)
	}
	return math.Abs(c) / u, nil
}

// TscoreAll is Tscore elementwise over array forms, broadcasting scalar
// forms.
func (m Measurement) TscoreAll(op Operand, r float64) ([]float64, error) {
	diff, err := m.tscoreDiff(op, r)
	if err != nil {
		return nil, fmt.Errorf("TscoreAll: %w", err)
	}
	return vec.Apply2(diff.centers(), diff.uncert.values(), func(c, u float64) float64 {
		return math.Abs(c) / u
	}), nil
}

func (m Measurement) tscoreDiff(op Operand, r float64) (Measurement, error) {
	switch op.kind {
	case kindTerm:
		return m.SubWithCorrelation(op.term, r)
	case kindNumber, kindSequence:
		// Exact operand: equivalent to subtracting a zero-uncertainty
		// measurement, so plain subtraction applies.
		return m.Sub(op)
	default:
		return Measurement{}, fmt.Errorf("%s operand, need Term, Number or Sequence: %w", op.kind, ErrTypeMismatch)
	}
}

// Cmp compares center values: -1, 0 or +1 as m's center is smaller,
// equal or larger. Comparing against a Term compares centers ONLY and
// emits an advisory warning — statistical comparison is Tscore's job.
// Scalar-form only; array forms fail with ErrConversionMismatch.
func (m Measurement) Cmp(op Operand) (int, error) {
	var other float64
	switch op.kind {
	case kindNumber:
		other = op.num
	case kindTerm:
		advise(adviseCompare)
		v, err := op.term.Center()
		if err != nil {
			return 0, fmt.Errorf("Cmp: %w", err)
		}
		other = v
	default:
		return 0, fmt.Errorf("Cmp: %s operand, need Number or Term: %w", op.kind, ErrTypeMismatch)
	}
	c, err := m.Center()
	if err != nil {
		return 0, fmt.Errorf("Cmp: %w", err)
	}
	switch {
	case c < other:
		return -1, nil
	case c > other:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports center equality, with the same advisory and form rules
// as Cmp.
func (m Measurement) Equal(op Operand) (bool, error) {
	c, err := m.Cmp(op)
	if err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	return c == 0, nil
}
