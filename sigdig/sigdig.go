// SPDX-License-Identifier: MIT
// Package sigdig: digit selection, rounding and rendering.
package sigdig

import (
	"errors"
	"math"
	"strconv"
)

// ErrLengthMismatch indicates that the parallel uncertainty and center
// slices passed to RoundAll/FormatAll have different lengths.
// Branch with errors.Is(err, ErrLengthMismatch).
var ErrLengthMismatch = errors.New("sigdig: uncertainty and center lengths differ")

// Digits returns n such that rounding m to n fractional digits keeps
// exactly one significant digit, or two when the leading digit is 1.
// Negative n means rounding to a positive power of ten (n = -3 rounds to
// the nearest 10³). A zero magnitude yields 0.
//
// Uses DefaultOptions; see DigitsOpt for the uncorrected variant.
func Digits(m float64) int {
	return DigitsOpt(m, DefaultOptions())
}

// DigitsOpt is Digits with an explicit Options.
//
// Algorithm: let p = ⌊log10|m|⌋ and msd = the leading digit. Keep the
// digit at 10^p, one more when msd == 1, then (with CarryCorrection)
// give the extra digit back if rounding carried "1.x" up to "2.0".
func DigitsOpt(m float64, opts Options) int {
	if m == 0 {
		return 0
	}
	am := math.Abs(m)
	p, msd := msdExponent(am)
	if msd == 1 {
		// Keep the next (lower) power of ten too.
		p--
		if opts.CarryCorrection {
			// If rounding at the extra digit carries up to exactly 2.0,
			// the extra digit is spurious. Erase it.
			r := math.Abs(Round(m, -p))
			if int(math.Round(shiftByPow10(r, -p))) == 20 {
				p++
			}
		}
	}
	return -p
}

// msdExponent returns the decimal exponent p of the most significant
// digit of am > 0 and that digit (1–9). The raw ⌊log10⌋ is cross-checked
// against the digit extraction because Log10 can land a hair off for
// exact powers of ten.
func msdExponent(am float64) (p, msd int) {
	p = int(math.Floor(math.Log10(am)))
	msd = int(shiftByPow10(am, -p))
	for msd >= 10 {
		p++
		msd = int(shiftByPow10(am, -p))
	}
	for msd == 0 {
		p--
		msd = int(shiftByPow10(am, -p))
	}
	return p, msd
}

// shiftByPow10 returns v·10^e using only exactly-representable integer
// powers of ten, so digit extraction never divides by an inexact 10^-k.
func shiftByPow10(v float64, e int) float64 {
	if e >= 0 {
		return v * math.Pow(10, float64(e))
	}
	return v / math.Pow(10, float64(-e))
}

// Round rounds v to the given number of fractional digits. Negative
// digits round to the corresponding positive power of ten:
// Round(9123, -3) = 9000. Ties round away from zero.
func Round(v float64, digits int) float64 {
	if digits >= 0 {
		p := math.Pow(10, float64(digits))
		return math.Round(v*p) / p
	}
	p := math.Pow(10, float64(-digits))
	return math.Round(v/p) * p
}

// RoundUncert rounds magnitude m per the significant-digit rule and also
// returns the digit count used, suitable for rounding the paired center
// value consistently.
func RoundUncert(m float64) (rounded float64, digits int) {
	digits = Digits(m)
	return Round(math.Abs(m), digits), digits
}

// Format renders magnitude m rounded to its significant digits:
// fixed-point with exactly n fractional digits when n >= 0, an integer
// with zeroed low-order digits when n < 0.
func Format(m float64) string {
	r, n := RoundUncert(m)
	return FormatAt(r, n)
}

// FormatAt renders v at a fixed digit count chosen elsewhere (typically
// the paired uncertainty's). v is rounded to that count first, so
// passing an unrounded center value is fine.
func FormatAt(v float64, digits int) string {
	v = Round(v, digits)
	if v == 0 {
		v = 0 // normalize -0
	}
	if digits >= 0 {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
	// Low-order digits are already zeroed; print the integer part only.
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// RoundAll rounds parallel uncertainty/center slices elementwise: each
// center is rounded at the digit count selected by its own uncertainty.
// The selector is applied independently per element; there is no
// cross-element interaction.
func RoundAll(uncerts, centers []float64) (ru, rc []float64, err error) {
	if len(uncerts) != len(centers) {
		return nil, nil, ErrLengthMismatch
	}
	ru = make([]float64, len(uncerts))
	rc = make([]float64, len(centers))
	for i, u := range uncerts {
		r, n := RoundUncert(u)
		ru[i] = r
		rc[i] = Round(centers[i], n)
	}
	return ru, rc, nil
}

// FormatAll renders parallel uncertainty/center slices elementwise, each
// pair sharing the digit count selected by the uncertainty.
func FormatAll(uncerts, centers []float64) (us, cs []string, err error) {
	if len(uncerts) != len(centers) {
		return nil, nil, ErrLengthMismatch
	}
	us = make([]string, len(uncerts))
	cs = make([]string, len(centers))
	for i, u := range uncerts {
		n := Digits(u)
		us[i] = FormatAt(math.Abs(u), n)
		cs[i] = FormatAt(centers[i], n)
	}
	return us, cs, nil
}
