package measure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/measurelab/uncert/measure"
)

// TestNewUncertainty_AbsoluteValue: magnitudes are non-negative at
// construction, whatever the sign of the input.
func TestNewUncertainty_AbsoluteValue(t *testing.T) {
	for _, x := range []float64{3.5, -3.5, 0, -0.001, 9123} {
		u := measure.NewUncertainty(x)
		v, err := u.Magnitude()
		require.NoError(t, err)
		assert.Equal(t, math.Abs(x), v, "NewUncertainty(%v)", x)
	}

	arr := measure.NewUncertaintyArray([]float64{-1, 2, -3})
	assert.Equal(t, []float64{1, 2, 3}, arr.Magnitudes())
}

// TestAddWithCorrelation_Quadrature: r=0 is independent quadrature,
// r=1 collapses to the linear sum, r=-1 to the difference.
func TestAddWithCorrelation_Quadrature(t *testing.T) {
	got, err := measure.NewUncertainty(3).AddWithCorrelation(measure.NewUncertainty(4), 0)
	require.NoError(t, err)
	v, err := got.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "combine(3,4,0) must be 5")

	a, b := 1.14923, 0.84213
	got, err = measure.NewUncertainty(a).AddWithCorrelation(measure.NewUncertainty(b), 1)
	require.NoError(t, err)
	v, err = got.Magnitude()
	require.NoError(t, err)
	assert.InDelta(t, a+b, v, 1e-12, "full correlation reduces to a+b")

	got, err = measure.NewUncertainty(a).AddWithCorrelation(measure.NewUncertainty(b), -1)
	require.NoError(t, err)
	v, err = got.Magnitude()
	require.NoError(t, err)
	assert.InDelta(t, a-b, v, 1e-7, "full anti-correlation reduces to |a-b|")
}

// TestAddWithCorrelation_Broadcast: a scalar form broadcasts across an
// array form; two array forms must have equal lengths.
func TestAddWithCorrelation_Broadcast(t *testing.T) {
	arr := measure.NewUncertaintyArray([]float64{10, 10})
	got, err := arr.AddWithCorrelation(measure.NewUncertainty(5), 0)
	require.NoError(t, err)
	assert.True(t, got.IsArray())
	assert.Equal(t, []float64{math.Sqrt(125), math.Sqrt(125)}, got.Magnitudes())

	// Reversed operand order broadcasts identically.
	got, err = measure.NewUncertainty(5).AddWithCorrelation(arr, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Sqrt(125), math.Sqrt(125)}, got.Magnitudes())

	_, err = arr.AddWithCorrelation(measure.NewUncertaintyArray([]float64{1, 2, 3}), 0)
	assert.ErrorIs(t, err, measure.ErrShapeMismatch)
}

// TestAdd_OperandDiscipline: only a Sigma operand is addable to an
// Uncertainty; everything else is a type mismatch.
func TestAdd_OperandDiscipline(t *testing.T) {
	u := measure.NewUncertainty(1)

	got, err := u.Add(measure.Sigma(measure.NewUncertainty(1)))
	require.NoError(t, err)
	v, err := got.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, math.Sqrt2, v)

	_, err = u.Add(measure.Number(1))
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
	_, err = u.Add(measure.Term(measure.NewMeasurement(1, 1)))
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
	_, err = u.Add(measure.Operand{})
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
}

// TestScaleDiv_NonNegativeClamp: scaling by a negative factor keeps
// magnitudes non-negative.
func TestScaleDiv_NonNegativeClamp(t *testing.T) {
	u := measure.NewUncertainty(13)

	v, err := u.Scale(2).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 26.0, v)

	v, err = u.Scale(-2).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 26.0, v, "negative factor must clamp to |k|·u")

	v, err = measure.NewUncertainty(36).Div(7).Magnitude()
	require.NoError(t, err)
	assert.InDelta(t, 36.0/7, v, 1e-12)

	v, err = u.Div(-2).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 6.5, v)
}

// TestFloor_SucceedsWithAdvisory: floor operations are dubious but
// valid — the result comes back and a warning is observable.
func TestFloor_SucceedsWithAdvisory(t *testing.T) {
	logs := captureAdvisories(t)

	v, err := measure.NewUncertainty(36).FloorDiv(7).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = measure.NewUncertainty(2.9).Floor().Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	require.Equal(t, 2, logs.Len(), "each floor operation must warn")
	assert.Contains(t, logs.All()[0].Message, "floor")
}

// TestConversions: scalar form and single-element array form convert to
// scalar numbers; longer arrays do not.
func TestConversions(t *testing.T) {
	v, err := measure.NewUncertainty(4.7).Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 4.7, v)

	n, err := measure.NewUncertainty(4.7).Int()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	one := measure.NewUncertaintyArray([]float64{4.7})
	v, err = one.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 4.7, v, "single-element array form converts fine")

	many := measure.NewUncertaintyArray([]float64{1, 2})
	_, err = many.Magnitude()
	assert.ErrorIs(t, err, measure.ErrConversionMismatch)
	_, err = many.Int()
	assert.ErrorIs(t, err, measure.ErrConversionMismatch)
	_, err = many.SignificantDigit()
	assert.ErrorIs(t, err, measure.ErrConversionMismatch)
}

// TestSignificantDigits_Elementwise: the selector runs independently
// per element.
func TestSignificantDigits_Elementwise(t *testing.T) {
	u := measure.NewUncertaintyArray([]float64{9123, 1.1243, 0.104, 1.96})
	assert.Equal(t, []int{-3, 1, 2, 0}, u.SignificantDigits())

	n, err := measure.NewUncertainty(0.104).SignificantDigit()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUncertaintyOf_Boundary(t *testing.T) {
	u, err := measure.UncertaintyOf(measure.Number(-2))
	require.NoError(t, err)
	v, err := u.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	u, err = measure.UncertaintyOf(measure.Sequence([]float64{1, 2}))
	require.NoError(t, err)
	assert.True(t, u.IsArray())

	orig := measure.NewUncertainty(3)
	u, err = measure.UncertaintyOf(measure.Sigma(orig))
	require.NoError(t, err)
	assert.Equal(t, orig, u, "Sigma passes through without reconversion")

	_, err = measure.UncertaintyOf(measure.Term(measure.NewMeasurement(1, 1)))
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
	_, err = measure.UncertaintyOf(measure.Operand{})
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
}

// TestSimpleList_RoundTrip covers AsSimpleList/FromSimpleList for the
// uncertainty type.
func TestUncertaintySimpleList_RoundTrip(t *testing.T) {
	arr := measure.NewUncertaintyArray([]float64{0.1, 0.2, 0.3})
	items := arr.AsSimpleList()
	require.Len(t, items, 3)
	for _, it := range items {
		assert.False(t, it.IsArray())
	}

	back, err := measure.UncertaintyFromSimpleList(items)
	require.NoError(t, err)
	assert.Equal(t, arr.Magnitudes(), back.Magnitudes())

	_, err = measure.UncertaintyFromSimpleList([]measure.Uncertainty{arr})
	assert.ErrorIs(t, err, measure.ErrShapeMismatch)
}

func TestUncertainty_At(t *testing.T) {
	arr := measure.NewUncertaintyArray([]float64{0.1, 0.2})
	el, err := arr.At(1)
	require.NoError(t, err)
	v, err := el.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 0.2, v)

	_, err = arr.At(2)
	assert.ErrorIs(t, err, measure.ErrIndexOutOfRange)
	_, err = measure.NewUncertainty(1).At(0)
	assert.ErrorIs(t, err, measure.ErrShapeMismatch)
}

func TestUncertainty_Cmp(t *testing.T) {
	u := measure.NewUncertainty(2)

	c, err := u.Cmp(measure.Number(3))
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = u.Cmp(measure.Sigma(measure.NewUncertainty(2)))
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	_, err = u.Cmp(measure.Sequence([]float64{1}))
	assert.ErrorIs(t, err, measure.ErrTypeMismatch)
	_, err = measure.NewUncertaintyArray([]float64{1, 2}).Cmp(measure.Number(1))
	assert.ErrorIs(t, err, measure.ErrConversionMismatch)
}

// TestZeroValue: the zero Uncertainty is a scalar zero magnitude.
func TestUncertaintyZeroValue(t *testing.T) {
	var u measure.Uncertainty
	v, err := u.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.False(t, u.IsArray())
	assert.Equal(t, "0", u.String())
}
