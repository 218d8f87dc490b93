// SPDX-License-Identifier: MIT
// Package measure: the advisory warning channel.
//
// Some operations are mathematically dubious without being invalid:
// flooring an uncertainty magnitude, or comparing two measurements by
// center value alone. They succeed, but the misuse must stay observable,
// so each emits a warning here alongside its result. Nothing in this
// package ever swallows one silently.
package measure

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var advisory atomic.Pointer[zap.Logger]

func init() {
	advisory.Store(defaultAdvisoryLogger())
}

// defaultAdvisoryLogger writes console-formatted warnings to stderr.
func defaultAdvisoryLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.WarnLevel))
}

// SetAdvisoryLogger replaces the logger that receives advisory warnings.
// Pass zap.NewNop() to silence them (discouraged outside tests: the
// warnings exist because the flagged operations are known footguns).
// Safe for concurrent use.
func SetAdvisoryLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	advisory.Store(l)
}

// advise emits one advisory warning.
func advise(msg string, fields ...zap.Field) {
	advisory.Load().Warn(msg, fields...)
}

const (
	adviseFloor   = "floor of an uncertainty magnitude is rarely meaningful"
	adviseCompare = "measurement comparison uses center values only; use Tscore for statistical comparison"
)
