package validation

import (
	"github.com/stretchr/testify/assert"
)

// signedSum and classify exist so the suite exercises every branch of some
// ordinary conditional code, which makes them a useful probe for coverage
// reporting configuration.

func signedSum(x, y int) int {
	if x > 0 {
		return x + y
	}
	return x - y
}

func classify(value int) string {
	switch {
	case value < 0:
		return "negative"
	case value == 0:
		return "zero"
	case value < 10:
		return "small"
	default:
		return "large"
	}
}

func DoBranchCoverageTests(t *T) {
	t.Run("both branches of signedSum", func(t *T) {
		assert.Equal(t, 8, signedSum(5, 3))
		assert.Equal(t, -8, signedSum(-5, 3))
	})

	t.Run("all branches of classify", func(t *T) {
		assert.Equal(t, "negative", classify(-5))
		assert.Equal(t, "zero", classify(0))
		assert.Equal(t, "small", classify(5))
		assert.Equal(t, "large", classify(15))
	})
}
