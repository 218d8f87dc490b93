package sigdig_test

import (
	"testing"

	"github.com/measurelab/uncert/sigdig"
)

func BenchmarkDigits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sigdig.Digits(1.96)
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = sigdig.Format(0.104)
	}
}
