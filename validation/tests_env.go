package validation

import (
	"os"

	"github.com/stretchr/testify/assert"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoEnvTests(t *T) {
	// Snapshot the ambient values so the restoration subtest can compare
	// against the state before any injection happened.
	before := map[string]*string{}
	for key := range fixtures.TestEnv() {
		if value, ok := os.LookupEnv(key); ok {
			value := value
			before[key] = &value
		} else {
			before[key] = nil
		}
	}

	t.Run("variables are visible during the test", func(t *T) {
		vars := fixtures.SetTestEnv(t)
		assert.Equal(t, "test_key_12345", vars["TEST_API_KEY"])
		for key, expected := range vars {
			assert.Equal(t, expected, os.Getenv(key), "variable %s was not injected", key)
		}
	})

	t.Run("variables do not leak into later tests", func(t *T) {
		for key, prev := range before {
			actual, present := os.LookupEnv(key)
			if prev == nil {
				assert.False(t, present, "variable %s leaked from an earlier test", key)
			} else {
				assert.Equal(t, *prev, actual, "variable %s was not restored", key)
			}
		}
	})
}
