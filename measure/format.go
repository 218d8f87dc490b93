// SPDX-License-Identifier: MIT
// Package measure: string rendering.
//
// String output is where precision finally leaves the value: the
// uncertainty picks a significant-digit count, both numbers are rounded
// at it, and the pair renders as "<center> ± <uncert>". Array forms
// render as a bracketed, comma-separated list of elementwise pairs,
// broadcasting a scalar uncertainty. GoString keeps the full-precision
// values visible next to the rounded display.
package measure

import (
	"fmt"
	"strings"

	"github.com/measurelab/uncert/sigdig"
)

// String renders the magnitude(s) rounded per the significant-digit
// rule: "0.10", or "[0.10, 0.2]" for array form.
func (u Uncertainty) String() string {
	if !u.array {
		return sigdig.Format(u.values()[0])
	}
	parts := make([]string, len(u.mag))
	for i, v := range u.mag {
		parts[i] = sigdig.Format(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// GoString renders u for %#v: the rounded display plus the
// full-precision magnitudes that arithmetic continues from.
func (u Uncertainty) GoString() string {
	return fmt.Sprintf("Uncertainty(%s, magnitude=%v)", u, u.values())
}

// pair renders one center/uncertainty element at the digit count the
// uncertainty selects.
func pair(center, uncert float64) string {
	n := sigdig.Digits(uncert)
	return sigdig.FormatAt(center, n) + " ± " + sigdig.FormatAt(uncert, n)
}

// String renders "<center> ± <uncert>" rounded per the uncertainty's
// significant digits; array forms render elementwise:
//
//	NewMeasurement(10.12, 1.999).Add(Term(NewMeasurement(20, 3.1)))  // "30 ± 4"
//	"[0.00 ± 0.10, 1.00 ± 0.14, 2.00 ± 0.18, 3.0 ± 0.2, 4.0 ± 0.3]"
func (m Measurement) String() string {
	cs := m.centers()
	us := m.uncert.values()
	if !m.array {
		return pair(cs[0], us[0])
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		u := us[0]
		if m.uncert.array {
			u = us[i]
		}
		parts[i] = pair(c, u)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// GoString renders m for %#v: rounded display plus full-precision
// center and uncertainty, so no information hides behind the rounding.
func (m Measurement) GoString() string {
	return fmt.Sprintf("Measurement(%s, center=%v, uncert=%v)", m, m.centers(), m.uncert.values())
}
