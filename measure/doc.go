// Package measure provides the Uncertainty and Measurement value types:
// a non-negative uncertainty magnitude and a (center, uncertainty) pair,
// with arithmetic that propagates uncertainty under an independence or
// explicit-correlation assumption.
//
// Both types come in scalar form (one value) and array form (one value
// per element of a sequence); the form is structural, decided by how the
// value was constructed. Mixing forms broadcasts the scalar side across
// the array side, NumPy-style, via one shared kernel.
//
// Arithmetic is value-oriented: every operation returns a brand-new
// instance and never mutates its operands. The only mutation in the
// package lives in the explicit Builder and UncertaintyBuilder types,
// which grow, shrink and edit array forms in place and hand back
// immutable snapshots. Builders are not internally synchronized; a
// builder shared across goroutines must be serialized by the caller.
//
// Operand discipline: public operations accept the closed Operand sum
// type — Number (an exact value), Sequence (exact values, elementwise),
// Term (another Measurement), Sigma (an Uncertainty) — and decide the
// kind exactly once at the boundary. Passing a kind an operation does
// not define fails with ErrTypeMismatch; correlated combinations go
// through the *WithCorrelation methods instead.
//
// Propagation rules (r is the correlation coefficient, default 0):
//
//	a ± u  +  b ± v  →  (a+b) ± √(u² + v² + 2uvr)
//	a ± u  −  b ± v  →  (a−b) ± √(u² + v² + 2uvr)   (same combinator)
//	a ± u  ×  b ± v  →  ab ± |ab|·√((u/a)² + (v/b)² + 2(u/a)(v/b)r)
//	a ± u  ÷  b ± v  →  a/b ± |a/b|·√((u/a)² + (v/b)² + 2(u/a)(v/b)r)
//
// Full floating-point precision is kept until String conversion, which
// rounds through package sigdig:
//
//	v, _ := measure.NewMeasurement(10.12, 1.999).Add(measure.Term(measure.NewMeasurement(20, 3.1)))
//	fmt.Println(v) // 30 ± 4
//
// Mathematically dubious but valid operations (flooring an uncertainty,
// comparing measurements by center) succeed and emit an advisory warning
// through a replaceable zap logger; see SetAdvisoryLogger.
package measure
