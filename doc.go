// Package uncert models physical measurements as a (center, uncertainty)
// pair and propagates uncertainty correctly through arithmetic — keeping
// full floating-point precision until the final string conversion, then
// rounding to scientifically-correct significant digits ("2.1 ± 0.4").
//
// What the module brings together:
//
//   - Significant-digit rounding: one significant digit for display,
//     or two when the leading digit is 1 ("1.x" carries less information
//     than "9.x"), with the carry edge case (1.96 → "2") handled.
//   - Quadrature error propagation: √(a² + b² + 2abr) with an explicit
//     correlation coefficient r (0 = independent, 1 = fully correlated).
//   - Full measurement algebra: + − × ÷ against measurements and exact
//     numbers, relative-uncertainty propagation for products and ratios,
//     t-scores for statistical comparison.
//   - Scalar and array forms with NumPy-style broadcasting between them,
//     implemented once in a shared kernel.
//
// Everything is organized under three subpackages:
//
//	sigdig/       — the significant-digit selector, rounding and bare-magnitude formatting
//	measure/      — Uncertainty & Measurement value types, builders, advisory warnings
//	internal/vec/ — private float-slice kernels (gonum-backed) shared by the packages above
//
// Quick example:
//
//	val, _ := measure.NewMeasurement(10.12, 1.999).Add(measure.Term(measure.NewMeasurement(20, 3.1)))
//	fmt.Println(val) // 30 ± 4
//
// All arithmetic produces new values; the only mutation lives in the
// explicit Builder types.
//
//	go get github.com/measurelab/uncert
package uncert
