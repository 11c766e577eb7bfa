package logger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Palmyraa/memfit/types"
)

// TestLogger routes simulator logs into a test's output via testing.TB, so
// per-process placement traces show up next to the assertions reading them.
type TestLogger struct {
	tb testing.TB
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a logger that writes through tb.Logf.
//
// Parameters:
//   - tb: The test or benchmark to write logs to
//
// Returns:
//   - *TestLogger: Logger whose Fatal fails the test via tb.Fatalf
func NewTest(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) { l.logf("DEBUG", msg, keysAndValues) }

// Info logs an info-level message with optional key-value pairs.
func (l *TestLogger) Info(msg string, keysAndValues ...any) { l.logf("INFO", msg, keysAndValues) }

// Warn logs a warning-level message with optional key-value pairs.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) { l.logf("WARN", msg, keysAndValues) }

// Error logs an error-level message with optional key-value pairs.
func (l *TestLogger) Error(msg string, keysAndValues ...any) { l.logf("ERROR", msg, keysAndValues) }

// Fatal logs a fatal-level message and fails the test immediately.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Fatalf("FATAL: %s%s", msg, formatPairs(keysAndValues))
}

func (l *TestLogger) logf(level, msg string, keysAndValues []any) {
	l.tb.Helper()
	l.tb.Logf("%s: %s%s", level, msg, formatPairs(keysAndValues))
}

// formatPairs renders key-value pairs as " k=v k=v". An unpaired trailing key
// renders with a <missing> value rather than being dropped.
func formatPairs(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}
