package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBenchmarkTimerZeroBeforeCycleCompletes(t *testing.T) {
	timer := NewBenchmarkTimer()
	assert.Equal(t, time.Duration(0), timer.Elapsed())

	timer.Start()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

func TestBenchmarkTimerMeasuresDelay(t *testing.T) {
	timer := NewBenchmarkTimer()
	timer.Start()
	time.Sleep(100 * time.Millisecond)
	timer.Stop()

	elapsed := timer.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 200*time.Millisecond)
}

func TestBenchmarkTimerIsReusable(t *testing.T) {
	timer := NewBenchmarkTimer()
	timer.Start()
	timer.Stop()
	first := timer.Elapsed()

	timer.Start()
	timer.Stop()
	second := timer.Elapsed()

	assert.GreaterOrEqual(t, first, time.Duration(0))
	assert.GreaterOrEqual(t, second, time.Duration(0))
}
