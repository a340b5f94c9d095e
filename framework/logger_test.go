package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerAccumulatesMessages(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("first %d", 1)
	logger.Printf("second")

	output := logger.Output()
	require.Len(t, output, 2)
	assert.Equal(t, "first 1", output[0].Message)
	assert.Equal(t, "second", output[1].Message)
	assert.False(t, output[0].Time.IsZero())
}

func TestCapturedOutputDumpUsesPrefix(t *testing.T) {
	var logger CapturingLogger
	logger.Printf("hello")

	var buf bytes.Buffer
	logger.Output().Dump(&buf, "  DEBUG ")

	assert.Contains(t, buf.String(), "  DEBUG [")
	assert.Contains(t, buf.String(), "] hello\n")
}

func TestNullLoggerDiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger().Printf("goes nowhere %v", 1)
	})
}
