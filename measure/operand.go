// SPDX-License-Identifier: MIT
// Package measure: the Operand boundary sum type.
package measure

import "github.com/measurelab/uncert/internal/vec"

// operandKind tags the closed set of operand variants. The zero value is
// deliberately invalid so that Operand{} fails loudly with
// ErrTypeMismatch instead of acting as a silent zero.
type operandKind uint8

const (
	kindInvalid operandKind = iota
	kindNumber
	kindSequence
	kindTerm
	kindSigma
)

func (k operandKind) String() string {
	switch k {
	case kindNumber:
		return "Number"
	case kindSequence:
		return "Sequence"
	case kindTerm:
		return "Term"
	case kindSigma:
		return "Sigma"
	default:
		return "invalid"
	}
}

// Operand is the closed, tagged set of values the arithmetic surface
// accepts. Each public operation inspects the kind exactly once and
// documents which kinds it defines; undefined kinds return
// ErrTypeMismatch rather than being coerced.
type Operand struct {
	kind operandKind
	num  float64
	seq  []float64
	term Measurement
	sig  Uncertainty
}

// Number wraps an exact scalar value (zero uncertainty).
func Number(v float64) Operand {
	return Operand{kind: kindNumber, num: v}
}

// Sequence wraps exact per-element values (zero uncertainty). The slice
// is copied; later caller mutation cannot leak in.
func Sequence(vs []float64) Operand {
	return Operand{kind: kindSequence, seq: vec.Clone(vs)}
}

// Term wraps a Measurement operand.
func Term(m Measurement) Operand {
	return Operand{kind: kindTerm, term: m}
}

// Sigma wraps an Uncertainty operand.
func Sigma(u Uncertainty) Operand {
	return Operand{kind: kindSigma, sig: u}
}

// numbers exposes a Number/Sequence operand as a kernel-ready slice plus
// its array-ness. Only valid for those two kinds.
func (op Operand) numbers() (vals []float64, array bool) {
	if op.kind == kindNumber {
		return []float64{op.num}, false
	}
	return op.seq, true
}
