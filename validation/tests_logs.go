package validation

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoLogCaptureTests(t *T) {
	t.Run("captures messages at all levels", func(t *T) {
		capture := fixtures.NewLogCapture()
		capture.Logger.Debug("Debug message")
		capture.Logger.Info("Info message")
		capture.Logger.Warn("Warning message")

		assert.True(t, capture.Contains("Debug message"))
		assert.True(t, capture.Contains("Info message"))
		assert.True(t, capture.Contains("Warning message"))
	})

	t.Run("preserves order and level", func(t *T) {
		capture := fixtures.NewLogCapture()
		capture.Logger.Debug("first")
		capture.Logger.Warn("second")

		entries := capture.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, "first", entries[0].Message)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "second", entries[1].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	})

	t.Run("captures are independent", func(t *T) {
		first := fixtures.NewLogCapture()
		second := fixtures.NewLogCapture()
		first.Logger.Info("only in first")

		assert.True(t, first.Contains("only in first"))
		assert.False(t, second.Contains("only in first"))
		assert.Equal(t, "", second.Text())
	})
}
