package measure_test

import (
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/measurelab/uncert/measure"
)

// TestMain silences the default advisory logger so that tests exercising
// advisory-bearing operations without capturing them keep the output
// clean. Tests that assert on advisories install an observer instead.
func TestMain(m *testing.M) {
	measure.SetAdvisoryLogger(zap.NewNop())
	os.Exit(m.Run())
}

// captureAdvisories routes advisory warnings into an observer for the
// duration of one test.
func captureAdvisories(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	measure.SetAdvisoryLogger(zap.New(core))
	t.Cleanup(func() { measure.SetAdvisoryLogger(zap.NewNop()) })
	return logs
}
