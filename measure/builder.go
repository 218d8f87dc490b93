// SPDX-License-Identifier: MIT
// Package measure: mutable builders for array forms.
//
// The value types never mutate; incremental construction lives here
// instead, so a Measurement handed to other code can never change under
// it. A builder maintains one invariant at all times: its center and
// uncertainty sequences have equal length, so a snapshot is always a
// valid array form.
//
// Builders are not internally synchronized; a builder shared across
// goroutines must be serialized by the caller.
package measure

import (
	"fmt"

	"github.com/measurelab/uncert/internal/vec"
)

// Builder accumulates an array-form Measurement element by element.
// The zero value is an empty builder ready for use.
type Builder struct {
	centers []float64
	uncerts []float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// BuilderOf seeds a Builder from an array-form Measurement, copying its
// data and materializing a broadcast scalar uncertainty per element.
// Scalar forms fail with ErrShapeMismatch.
func BuilderOf(m Measurement) (*Builder, error) {
	if !m.array {
		return nil, fmt.Errorf("BuilderOf: scalar form: %w", ErrShapeMismatch)
	}
	b := &Builder{centers: m.Centers()}
	if m.uncert.IsArray() {
		b.uncerts = m.uncert.Magnitudes()
	} else {
		u := m.uncert.values()[0]
		b.uncerts = make([]float64, len(b.centers))
		for i := range b.uncerts {
			b.uncerts[i] = u
		}
	}
	return b, nil
}

// Len returns the current element count.
func (b *Builder) Len() int { return len(b.centers) }

// Append adds one scalar-form Measurement. Array forms fail with
// ErrShapeMismatch — use Extend for those.
func (b *Builder) Append(m Measurement) error {
	if m.array {
		return fmt.Errorf("Append: array form (use Extend): %w", ErrShapeMismatch)
	}
	b.centers = append(b.centers, m.centers()[0])
	b.uncerts = append(b.uncerts, m.uncert.values()[0])
	return nil
}

// Extend concatenates an array-form Measurement. Scalar forms fail with
// ErrShapeMismatch — use Append for those.
func (b *Builder) Extend(m Measurement) error {
	if !m.array {
		return fmt.Errorf("Extend: scalar form (use Append): %w", ErrShapeMismatch)
	}
	b.centers = vec.Concat(b.centers, m.centers())
	if m.uncert.IsArray() {
		b.uncerts = vec.Concat(b.uncerts, m.uncert.values())
		return nil
	}
	u := m.uncert.values()[0]
	for range m.centers() {
		b.uncerts = append(b.uncerts, u)
	}
	return nil
}

// Set replaces element i with a scalar-form Measurement.
func (b *Builder) Set(i int, m Measurement) error {
	if m.array {
		return fmt.Errorf("Set: array form: %w", ErrShapeMismatch)
	}
	if i < 0 || i >= len(b.centers) {
		return fmt.Errorf("Set(%d): len %d: %w", i, len(b.centers), ErrIndexOutOfRange)
	}
	b.centers[i] = m.centers()[0]
	b.uncerts[i] = m.uncert.values()[0]
	return nil
}

// Delete removes element i.
func (b *Builder) Delete(i int) error {
	if i < 0 || i >= len(b.centers) {
		return fmt.Errorf("Delete(%d): len %d: %w", i, len(b.centers), ErrIndexOutOfRange)
	}
	b.centers = vec.Delete(b.centers, i)
	b.uncerts = vec.Delete(b.uncerts, i)
	return nil
}

// At returns element i as a scalar-form Measurement.
func (b *Builder) At(i int) (Measurement, error) {
	if i < 0 || i >= len(b.centers) {
		return Measurement{}, fmt.Errorf("At(%d): len %d: %w", i, len(b.centers), ErrIndexOutOfRange)
	}
	return NewMeasurement(b.centers[i], b.uncerts[i]), nil
}

// Measurement snapshots the builder as an immutable array-form
// Measurement. Later builder mutation cannot reach the snapshot.
func (b *Builder) Measurement() Measurement {
	return Measurement{
		center: vec.Clone(b.centers),
		array:  true,
		uncert: NewUncertaintyArray(b.uncerts),
	}
}

// UncertaintyBuilder accumulates an array-form Uncertainty element by
// element, mirroring Builder. The zero value is an empty builder.
type UncertaintyBuilder struct {
	mags []float64
}

// NewUncertaintyBuilder returns an empty UncertaintyBuilder.
func NewUncertaintyBuilder() *UncertaintyBuilder { return &UncertaintyBuilder{} }

// UncertaintyBuilderOf seeds a builder from an array-form Uncertainty.
// Scalar forms fail with ErrShapeMismatch.
func UncertaintyBuilderOf(u Uncertainty) (*UncertaintyBuilder, error) {
	if !u.IsArray() {
		return nil, fmt.Errorf("UncertaintyBuilderOf: scalar form: %w", ErrShapeMismatch)
	}
	return &UncertaintyBuilder{mags: u.Magnitudes()}, nil
}

// Len returns the current element count.
func (b *UncertaintyBuilder) Len() int { return len(b.mags) }

// Append adds one scalar-form Uncertainty.
func (b *UncertaintyBuilder) Append(u Uncertainty) error {
	if u.IsArray() {
		return fmt.Errorf("Append: array form (use Extend): %w", ErrShapeMismatch)
	}
	b.mags = append(b.mags, u.values()[0])
	return nil
}

// Extend concatenates an array-form Uncertainty.
func (b *UncertaintyBuilder) Extend(u Uncertainty) error {
	if !u.IsArray() {
		return fmt.Errorf("Extend: scalar form (use Append): %w", ErrShapeMismatch)
	}
	b.mags = vec.Concat(b.mags, u.values())
	return nil
}

// Set replaces element i with a scalar-form Uncertainty.
func (b *UncertaintyBuilder) Set(i int, u Uncertainty) error {
	if u.IsArray() {
		return fmt.Errorf("Set: array form: %w", ErrShapeMismatch)
	}
	if i < 0 || i >= len(b.mags) {
		return fmt.Errorf("Set(%d): len %d: %w", i, len(b.mags), ErrIndexOutOfRange)
	}
	b.mags[i] = u.values()[0]
	return nil
}

// Delete removes element i.
func (b *UncertaintyBuilder) Delete(i int) error {
	if i < 0 || i >= len(b.mags) {
		return fmt.Errorf("Delete(%d): len %d: %w", i, len(b.mags), ErrIndexOutOfRange)
	}
	b.mags = vec.Delete(b.mags, i)
	return nil
}

// Uncertainty snapshots the builder as an immutable array-form
// Uncertainty.
func (b *UncertaintyBuilder) Uncertainty() Uncertainty {
	return NewUncertaintyArray(b.mags)
}
