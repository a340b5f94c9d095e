package validation

import (
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoBenchmarkTimerTests(t *T) {
	t.Run("reports zero before a full start/stop cycle", func(t *T) {
		timer := fixtures.NewBenchmarkTimer()
		assert.Equal(t, time.Duration(0), timer.Elapsed())
		timer.Start()
		assert.Equal(t, time.Duration(0), timer.Elapsed())
	})

	t.Run("measures a real delay within bounds", func(t *T) {
		timer := fixtures.NewBenchmarkTimer()
		timer.Start()
		time.Sleep(100 * time.Millisecond)
		timer.Stop()

		elapsed := timer.Elapsed()
		assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
		assert.Less(t, elapsed, 200*time.Millisecond)
	})
}
