package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogCaptureSeesAllLevels(t *testing.T) {
	capture := NewLogCapture()

	capture.Logger.Debug("Debug message")
	capture.Logger.Info("Info message")
	capture.Logger.Warn("Warning message")

	assert.True(t, capture.Contains("Debug message"))
	assert.True(t, capture.Contains("Info message"))
	assert.True(t, capture.Contains("Warning message"))
	assert.False(t, capture.Contains("never logged"))
}

func TestLogCaptureEntries(t *testing.T) {
	capture := NewLogCapture()
	capture.Logger.Info("hello")

	entries := capture.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestLogCaptureText(t *testing.T) {
	capture := NewLogCapture()
	assert.Equal(t, "", capture.Text())

	capture.Logger.Info("one")
	capture.Logger.Info("two")
	assert.Equal(t, "one\ntwo", capture.Text())
}
