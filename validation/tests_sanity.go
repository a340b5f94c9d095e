package validation

import (
	"github.com/stretchr/testify/assert"

	"github.com/fixturelab/fixture-validation/framework"
)

// DoHarnessSanityTests is a smoke test for the harness itself: if these fail,
// nothing else in the suite can be trusted.
func DoHarnessSanityTests(t *T) {
	t.Run("assertions are wired up", func(t *T) {
		assert.True(t, true)
		assert.Equal(t, 2, 1+1)
	})

	t.Run("subtest results are accumulated", func(t *T) {
		results := framework.Run(nil, nil, func(c *framework.Context) {
			c.Run("passes", func(c *framework.Context) {})
		})
		assert.True(t, results.OK())
		assert.Len(t, results.Tests, 2)
	})

	t.Run("failures are recorded without stopping the run", func(t *T) {
		results := framework.Run(nil, nil, func(c *framework.Context) {
			c.Run("fails", func(c *framework.Context) {
				c.Errorf("deliberate failure")
			})
			c.Run("still runs", func(c *framework.Context) {})
		})
		assert.False(t, results.OK())
		assert.Len(t, results.Failures, 1)
		assert.Equal(t, "fails", results.Failures[0].TestID.String())
	})
}
