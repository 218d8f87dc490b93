// SPDX-License-Identifier: MIT
// Package measure: the Measurement value type.
package measure

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/measurelab/uncert/internal/vec"
	"github.com/measurelab/uncert/sigdig"
)

// Measurement is a center value with an Uncertainty, scalar-form or
// array-form. The form follows the shape of the center: an array-form
// uncertainty requires an array-form center of the same length, while an
// array-form center happily carries a scalar uncertainty that applies to
// every element (broadcasting).
//
// All arithmetic returns a new instance and keeps full floating-point
// precision; rounding happens only in String. The zero value is a usable
// scalar 0 ± 0.
type Measurement struct {
	center []float64
	array  bool
	uncert Uncertainty
}

// NewMeasurement returns a scalar-form Measurement center ± |uncert|.
func NewMeasurement(center, uncert float64) Measurement {
	return Measurement{center: []float64{center}, uncert: NewUncertainty(uncert)}
}

// NewMeasurementArray returns an array-form Measurement from parallel
// center and uncertainty slices. Differing lengths fail with
// ErrShapeMismatch. Both inputs are copied.
func NewMeasurementArray(centers, uncerts []float64) (Measurement, error) {
	if len(centers) != len(uncerts) {
		return Measurement{}, fmt.Errorf("NewMeasurementArray: %d centers, %d uncertainties: %w",
			len(centers), len(uncerts), ErrShapeMismatch)
	}
	return Measurement{
		center: vec.Clone(centers),
		array:  true,
		uncert: NewUncertaintyArray(uncerts),
	}, nil
}

// NewMeasurementOf constructs a Measurement from boundary Operands.
// The center must be a Number or Sequence; the uncertainty a Number,
// Sequence or Sigma (Sigma passes through without reconversion). An
// array-form uncertainty with a scalar center, or with a center of a
// different length, fails with ErrShapeMismatch.
func NewMeasurementOf(center, uncert Operand) (Measurement, error) {
	var (
		cvals  []float64
		carray bool
	)
	switch center.kind {
	case kindNumber, kindSequence:
		cvals, carray = center.numbers()
	default:
		return Measurement{}, fmt.Errorf("NewMeasurementOf: %s center, need Number or Sequence: %w",
			center.kind, ErrTypeMismatch)
	}

	u, err := UncertaintyOf(uncert)
	if err != nil {
		return Measurement{}, fmt.Errorf("NewMeasurementOf: %w", err)
	}
	if u.IsArray() && (!carray || len(cvals) != u.Len()) {
		return Measurement{}, fmt.Errorf("NewMeasurementOf: center len %d, uncertainty len %d: %w",
			len(cvals), u.Len(), ErrShapeMismatch)
	}
	return Measurement{center: vec.Clone(cvals), array: carray, uncert: u}, nil
}

// FromSamples summarizes raw observations as mean ± population standard
// deviation — the usual way to quote a repeated measurement:
//
//	measure.FromSamples([]float64{1.623, 2.123, 2.623}).String() // "2.1 ± 0.4"
//
// An empty sample set yields NaN ± NaN.
func FromSamples(samples []float64) Measurement {
	return NewMeasurement(stat.Mean(samples, nil), stat.PopStdDev(samples, nil))
}

// FromSimpleList assembles an array-form Measurement from scalar-form
// elements. Any array-form item fails with ErrShapeMismatch.
func FromSimpleList(items []Measurement) (Measurement, error) {
	centers := make([]float64, len(items))
	sigmas := make([]Uncertainty, len(items))
	for i, it := range items {
		if it.array {
			return Measurement{}, fmt.Errorf("FromSimpleList: item %d is array-form: %w", i, ErrShapeMismatch)
		}
		centers[i] = it.centers()[0]
		sigmas[i] = it.uncert
	}
	u, err := UncertaintyFromSimpleList(sigmas)
	if err != nil {
		return Measurement{}, fmt.Errorf("FromSimpleList: %w", err)
	}
	return Measurement{center: centers, array: true, uncert: u}, nil
}

// centers returns the backing center values, treating the zero value as
// a scalar zero. Callers must not mutate the result.
func (m Measurement) centers() []float64 {
	if m.center == nil {
		return []float64{0}
	}
	return m.center
}

// IsArray reports whether m is array-form.
func (m Measurement) IsArray() bool { return m.array }

// Len returns the element count: 1 for scalar form.
func (m Measurement) Len() int { return len(m.centers()) }

// Uncert returns the uncertainty of m.
func (m Measurement) Uncert() Uncertainty { return m.uncert }

// Center converts the center to a single float64. Valid for scalar form
// and single-element array form; longer arrays fail with
// ErrConversionMismatch.
func (m Measurement) Center() (float64, error) {
	v := m.centers()
	if len(v) != 1 {
		return 0, fmt.Errorf("Center: %d elements: %w", len(v), ErrConversionMismatch)
	}
	return v[0], nil
}

// Centers returns a copy of the center values; scalar form yields a
// one-element slice.
func (m Measurement) Centers() []float64 { return vec.Clone(m.centers()) }

// Float64 is Center: the scalar numeric conversion of m.
func (m Measurement) Float64() (float64, error) {
	v, err := m.Center()
	if err != nil {
		return 0, fmt.Errorf("Float64: %w", err)
	}
	return v, nil
}

// Int converts the center to an int, truncating toward zero. Same form
// rules as Center.
func (m Measurement) Int() (int, error) {
	v, err := m.Center()
	if err != nil {
		return 0, fmt.Errorf("Int: %w", err)
	}
	return int(v), nil
}

// At returns element i of an array-form Measurement as a scalar form,
// broadcasting a scalar uncertainty. Scalar forms fail with
// ErrShapeMismatch.
func (m Measurement) At(i int) (Measurement, error) {
	if !m.array {
		return Measurement{}, fmt.Errorf("At: scalar form: %w", ErrShapeMismatch)
	}
	if i < 0 || i >= len(m.center) {
		return Measurement{}, fmt.Errorf("At(%d): len %d: %w", i, len(m.center), ErrIndexOutOfRange)
	}
	u := m.uncert
	if u.IsArray() {
		var err error
		if u, err = m.uncert.At(i); err != nil {
			return Measurement{}, fmt.Errorf("At(%d): %w", i, err)
		}
	}
	return Measurement{center: []float64{m.center[i]}, uncert: u}, nil
}

// Rounded returns m with center and uncertainty rounded at the
// uncertainty's significant-digit count, elementwise. Display-oriented;
// arithmetic should stay on the unrounded value.
func (m Measurement) Rounded() Measurement {
	cs := m.centers()
	us := m.uncert.values()
	rc := make([]float64, len(cs))
	ru := make([]float64, len(cs))
	for i, c := range cs {
		u := us[0]
		if m.uncert.array {
			u = us[i]
		}
		var n int
		ru[i], n = sigdig.RoundUncert(u)
		rc[i] = sigdig.Round(c, n)
	}
	out := Measurement{center: rc, array: m.array}
	if m.uncert.array {
		out.uncert = Uncertainty{mag: ru, array: true}
	} else {
		out.uncert = Uncertainty{mag: ru[:1]}
	}
	return out
}

// AsSimpleList flattens m into scalar-form elements, broadcasting a
// scalar uncertainty; a scalar form yields itself as the only element.
func (m Measurement) AsSimpleList() []Measurement {
	cs := m.centers()
	us := m.uncert.values()
	out := make([]Measurement, len(cs))
	for i, c := range cs {
		u := us[0]
		if m.uncert.array {
			u = us[i]
		}
		out[i] = NewMeasurement(c, u)
	}
	return out
}
