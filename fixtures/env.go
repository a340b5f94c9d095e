package fixtures

import (
	"os"

	"github.com/stretchr/testify/require"
)

// TestEnv returns the standard set of environment variables injected by
// SetTestEnv.
func TestEnv() map[string]string {
	return map[string]string{
		"TEST_API_KEY": "test_key_12345",
		"TEST_ENV":     "testing",
		"DEBUG":        "true",
	}
}

// SetTestEnv sets the standard test environment variables for the duration of
// the test. Whatever values the variables had before, including being unset,
// are restored when the test completes, so the injection cannot leak into
// unrelated tests.
func SetTestEnv(t TestingT) map[string]string {
	vars := TestEnv()
	for key, value := range vars {
		key := key
		prev, had := os.LookupEnv(key)
		require.NoError(t, os.Setenv(key, value))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
	return vars
}
