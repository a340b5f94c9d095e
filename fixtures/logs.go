package fixtures

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// LogCapture is a zap logger whose output is captured in memory, for tests
// that assert on what was logged. The capture is enabled at debug level.
type LogCapture struct {
	Logger   *zap.Logger
	observed *observer.ObservedLogs
}

// NewLogCapture creates a LogCapture. No teardown is needed; the captured
// entries are garbage once the test drops the capture.
func NewLogCapture() *LogCapture {
	core, observed := observer.New(zapcore.DebugLevel)
	return &LogCapture{
		Logger:   zap.New(core),
		observed: observed,
	}
}

// Entries returns every entry captured so far, oldest first.
func (c *LogCapture) Entries() []observer.LoggedEntry {
	return c.observed.All()
}

// Text returns all captured messages joined by newlines.
func (c *LogCapture) Text() string {
	var lines []string
	for _, entry := range c.observed.All() {
		lines = append(lines, entry.Message)
	}
	return strings.Join(lines, "\n")
}

// Contains reports whether any captured message contains the substring.
func (c *LogCapture) Contains(substring string) bool {
	for _, entry := range c.observed.All() {
		if strings.Contains(entry.Message, substring) {
			return true
		}
	}
	return false
}
