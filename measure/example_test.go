package measure_test

import (
	"fmt"

	"github.com/measurelab/uncert/measure"
)

// ExampleMeasurement_Add shows independent error propagation and the
// rounded display.
func ExampleMeasurement_Add() {
	a := measure.NewMeasurement(10.12, 1.999)
	b := measure.NewMeasurement(20, 3.1)

	sum, _ := a.Add(measure.Term(b))
	fmt.Println(sum)
	// Output: 30 ± 4
}

// ExampleMeasurement_Mul: relative uncertainties combine through a
// product and scale back by the new center.
func ExampleMeasurement_Mul() {
	a := measure.NewMeasurement(10.12, 1.999)
	b := measure.NewMeasurement(20, 1.1)

	prod, _ := a.Mul(measure.Term(b))
	fmt.Println(prod)

	scaled, _ := b.Mul(measure.Number(10))
	fmt.Println(scaled)

	ratio, _ := a.Div(measure.Term(b))
	fmt.Println(ratio)

	inv, _ := measure.NewMeasurement(10, 1).DivFrom(measure.Number(1))
	fmt.Println(inv)
	// Output:
	// 200 ± 40
	// 200 ± 11
	// 0.51 ± 0.10
	// 0.100 ± 0.010
}

// ExampleFromSamples formats a repeated observation as mean ± population
// standard deviation.
func ExampleFromSamples() {
	fmt.Println(measure.FromSamples([]float64{1.623, 2.123, 2.623}))
	// Output: 2.1 ± 0.4
}

// ExampleMeasurement_Tscore: statistical separation instead of naive
// center comparison.
func ExampleMeasurement_Tscore() {
	a := measure.NewMeasurement(10, 1)
	b := measure.NewMeasurement(11, 1)

	independent, _ := a.Tscore(measure.Term(b), 0)
	correlated, _ := a.Tscore(measure.Term(b), 1)
	exact, _ := a.Tscore(measure.Number(11), 0)
	fmt.Printf("%.4f %.1f %.1f\n", independent, correlated, exact)
	// Output: 0.7071 0.5 1.0
}

// ExampleBuilder builds an array-form measurement incrementally, then
// snapshots it for display.
func ExampleBuilder() {
	b := measure.NewBuilder()
	_ = b.Append(measure.NewMeasurement(0, 0.1))
	_ = b.Append(measure.NewMeasurement(1, 0.14))
	tail, _ := measure.NewMeasurementArray([]float64{2, 3}, []float64{0.18, 0.22})
	_ = b.Extend(tail)

	fmt.Println(b.Measurement())
	// Output: [0.00 ± 0.10, 1.00 ± 0.14, 2.00 ± 0.18, 3.0 ± 0.2]
}
