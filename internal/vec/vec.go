// SPDX-License-Identifier: MIT
// Package vec: private float-slice kernels shared by sigdig and measure.
//
// All kernels are deterministic single-pass loops or thin wrappers over
// gonum/floats. Shape validation is the caller's job: the arithmetic
// kernels (Add/Sub/Mul/Div/Apply2) accept operands whose lengths are
// either equal or where one side has length 1, in which case that side
// broadcasts across the other. Any other combination must be rejected
// before reaching this package.
package vec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Clone returns a fresh copy of a. A nil input yields an empty slice.
func Clone(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	return out
}

// Abs returns |a| elementwise in a new slice.
func Abs(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Abs(v)
	}
	return out
}

// Floor returns ⌊a⌋ elementwise in a new slice.
func Floor(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Floor(v)
	}
	return out
}

// Scale returns k·a elementwise in a new slice.
func Scale(k float64, a []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), k, a)
}

// AddConst returns a+k elementwise in a new slice.
func AddConst(k float64, a []float64) []float64 {
	out := Clone(a)
	floats.AddConst(k, out)
	return out
}

// Add returns a+b with scalar broadcasting (see package doc).
func Add(a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		return floats.AddTo(make([]float64, len(a)), a, b)
	case len(a) == 1:
		return AddConst(a[0], b)
	default: // len(b) == 1
		return AddConst(b[0], a)
	}
}

// Sub returns a−b with scalar broadcasting.
func Sub(a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		return floats.SubTo(make([]float64, len(a)), a, b)
	case len(b) == 1:
		return AddConst(-b[0], a)
	default: // len(a) == 1: a[0]−b[i]
		out := floats.ScaleTo(make([]float64, len(b)), -1, b)
		floats.AddConst(a[0], out)
		return out
	}
}

// Mul returns a·b with scalar broadcasting.
func Mul(a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		return floats.MulTo(make([]float64, len(a)), a, b)
	case len(a) == 1:
		return Scale(a[0], b)
	default: // len(b) == 1
		return Scale(b[0], a)
	}
}

// Div returns a÷b with scalar broadcasting. Division by zero propagates
// IEEE-754 ±Inf/NaN; no kernel-level guard exists.
func Div(a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		return floats.DivTo(make([]float64, len(a)), a, b)
	case len(b) == 1:
		return Scale(1/b[0], a)
	default: // len(a) == 1
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = a[0] / v
		}
		return out
	}
}

// Apply2 maps f over (a, b) pairwise with scalar broadcasting. This is
// the one generic combinator behind quadrature sums and relative-
// uncertainty scaling; keeping it unique keeps broadcasting semantics
// identical across every operation built on it.
func Apply2(a, b []float64, f func(x, y float64) float64) []float64 {
	switch {
	case len(a) == len(b):
		out := make([]float64, len(a))
		for i := range a {
			out[i] = f(a[i], b[i])
		}
		return out
	case len(a) == 1:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = f(a[0], v)
		}
		return out
	default: // len(b) == 1
		out := make([]float64, len(a))
		for i, v := range a {
			out[i] = f(v, b[0])
		}
		return out
	}
}

// Concat returns a++b in a new slice.
func Concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Delete returns a copy of a without element i. The caller guarantees
// 0 <= i < len(a).
func Delete(a []float64, i int) []float64 {
	out := make([]float64, 0, len(a)-1)
	out = append(out, a[:i]...)
	return append(out, a[i+1:]...)
}
