package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})

	return NewSlog(slog.New(handler)), buf
}

func TestNewSlog(t *testing.T) {
	logger, _ := newBufLogger(slog.LevelDebug)

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestNewSlogDefault(t *testing.T) {
	logger := NewSlogDefault()

	require.NotNil(t, logger)
	require.NotNil(t, logger.logger)
}

func TestSlogLogger_Debug(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelDebug)

	logger.Debug("process placed", "process", "P1", "block", 1)

	output := buf.String()
	assert.Contains(t, output, "process placed")
	assert.Contains(t, output, "process=P1")
	assert.Contains(t, output, "block=1")
	assert.Contains(t, output, "level=DEBUG")
}

func TestSlogLogger_Info(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelInfo)

	logger.Info("strategy run completed", "strategy", "Best Fit", "allocated", 4)

	output := buf.String()
	assert.Contains(t, output, "strategy run completed")
	assert.Contains(t, output, `strategy="Best Fit"`)
	assert.Contains(t, output, "allocated=4")
	assert.Contains(t, output, "level=INFO")
}

func TestSlogLogger_WarnAndError(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelWarn)

	logger.Warn("warning message", "internalFrag", 559)
	logger.Error("error message", "error", "bad input")

	output := buf.String()
	assert.Contains(t, output, "warning message")
	assert.Contains(t, output, "internalFrag=559")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "level=ERROR")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufLogger(slog.LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
}
