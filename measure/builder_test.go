package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measurelab/uncert/measure"
)

// requireParallel asserts the builder invariant after a mutation: a
// snapshot is always a valid array form with matching lengths.
func requireParallel(t *testing.T, b *measure.Builder) {
	t.Helper()
	m := b.Measurement()
	require.True(t, m.IsArray())
	require.Equal(t, m.Len(), m.Uncert().Len())
	require.Equal(t, b.Len(), m.Len())
}

func TestBuilder_AppendExtendDelete(t *testing.T) {
	b := measure.NewBuilder()
	requireParallel(t, b)

	require.NoError(t, b.Append(measure.NewMeasurement(1, 0.1)))
	require.NoError(t, b.Append(measure.NewMeasurement(2, 0.2)))
	requireParallel(t, b)

	tail, err := measure.NewMeasurementArray([]float64{3, 4}, []float64{0.3, 0.4})
	require.NoError(t, err)
	require.NoError(t, b.Extend(tail))
	requireParallel(t, b)

	m := b.Measurement()
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Centers())
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, m.Uncert().Magnitudes())

	require.NoError(t, b.Delete(1))
	requireParallel(t, b)
	assert.Equal(t, []float64{1, 3, 4}, b.Measurement().Centers())

	require.NoError(t, b.Set(0, measure.NewMeasurement(9, 0.9)))
	requireParallel(t, b)
	el, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, "9.0 ± 0.9", el.String())
}

// TestBuilder_ShapeDiscipline: append wants scalar forms, extend wants
// array forms; crossing them is a shape mismatch.
func TestBuilder_ShapeDiscipline(t *testing.T) {
	b := measure.NewBuilder()
	arr, err := measure.NewMeasurementArray([]float64{1, 2}, []float64{0.1, 0.2})
	require.NoError(t, err)

	assert.ErrorIs(t, b.Append(arr), measure.ErrShapeMismatch)
	assert.ErrorIs(t, b.Extend(measure.NewMeasurement(1, 0.1)), measure.ErrShapeMismatch)
	assert.ErrorIs(t, b.Set(0, arr), measure.ErrShapeMismatch)

	assert.ErrorIs(t, b.Delete(0), measure.ErrIndexOutOfRange)
	_, err = b.At(0)
	assert.ErrorIs(t, err, measure.ErrIndexOutOfRange)
}

// TestBuilderOf: seeding copies the measurement and materializes a
// broadcast scalar uncertainty.
func TestBuilderOf(t *testing.T) {
	src, err := measure.NewMeasurementOf(measure.Sequence([]float64{1, 2}), measure.Number(0.5))
	require.NoError(t, err)

	b, err := measure.BuilderOf(src)
	require.NoError(t, err)
	requireParallel(t, b)
	assert.Equal(t, []float64{0.5, 0.5}, b.Measurement().Uncert().Magnitudes())

	// Mutating the builder must not reach the source measurement.
	require.NoError(t, b.Set(0, measure.NewMeasurement(7, 0.7)))
	assert.Equal(t, []float64{1, 2}, src.Centers())

	_, err = measure.BuilderOf(measure.NewMeasurement(1, 0.1))
	assert.ErrorIs(t, err, measure.ErrShapeMismatch)
}

// TestBuilder_ExtendBroadcastsScalarUncert: extending with an
// array-center/scalar-uncert measurement fills the uncertainty per
// element.
func TestBuilder_ExtendBroadcastsScalarUncert(t *testing.T) {
	b := measure.NewBuilder()
	require.NoError(t, b.Append(measure.NewMeasurement(0, 0.1)))

	tail, err := measure.NewMeasurementOf(measure.Sequence([]float64{1, 2}), measure.Number(0.3))
	require.NoError(t, err)
	require.NoError(t, b.Extend(tail))
	requireParallel(t, b)
	assert.Equal(t, []float64{0.1, 0.3, 0.3}, b.Measurement().Uncert().Magnitudes())
}

// TestBuilder_SnapshotIsolation: snapshots never alias the builder.
func TestBuilder_SnapshotIsolation(t *testing.T) {
	b := measure.NewBuilder()
	require.NoError(t, b.Append(measure.NewMeasurement(1, 0.1)))
	snap := b.Measurement()

	require.NoError(t, b.Set(0, measure.NewMeasurement(9, 0.9)))
	assert.Equal(t, []float64{1}, snap.Centers())
	assert.Equal(t, []float64{0.1}, snap.Uncert().Magnitudes())
}

func TestUncertaintyBuilder(t *testing.T) {
	b := measure.NewUncertaintyBuilder()
	require.NoError(t, b.Append(measure.NewUncertainty(0.1)))
	require.NoError(t, b.Extend(measure.NewUncertaintyArray([]float64{0.2, 0.3})))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, b.Uncertainty().Magnitudes())

	assert.ErrorIs(t, b.Append(measure.NewUncertaintyArray([]float64{1})), measure.ErrShapeMismatch)
	assert.ErrorIs(t, b.Extend(measure.NewUncertainty(1)), measure.ErrShapeMismatch)

	require.NoError(t, b.Set(1, measure.NewUncertainty(0.9)))
	require.NoError(t, b.Delete(0))
	assert.Equal(t, []float64{0.9, 0.3}, b.Uncertainty().Magnitudes())
	assert.ErrorIs(t, b.Set(9, measure.NewUncertainty(1)), measure.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Delete(9), measure.ErrIndexOutOfRange)

	seeded, err := measure.UncertaintyBuilderOf(measure.NewUncertaintyArray([]float64{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, 2, seeded.Len())
	_, err = measure.UncertaintyBuilderOf(measure.NewUncertainty(1))
	assert.ErrorIs(t, err, measure.ErrShapeMismatch)
}
