package fixtures

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTestEnvInjectsVariables(t *testing.T) {
	t.Run("inject", func(t *testing.T) {
		vars := SetTestEnv(t)
		assert.Equal(t, "test_key_12345", vars["TEST_API_KEY"])
		for key, expected := range vars {
			assert.Equal(t, expected, os.Getenv(key))
		}
	})
}

func TestSetTestEnvRestoresPreviousValues(t *testing.T) {
	require.NoError(t, os.Setenv("TEST_ENV", "previous"))
	defer os.Unsetenv("TEST_ENV")
	require.NoError(t, os.Unsetenv("TEST_API_KEY"))

	t.Run("inject", func(t *testing.T) {
		SetTestEnv(t)
		assert.Equal(t, "testing", os.Getenv("TEST_ENV"))
		assert.Equal(t, "test_key_12345", os.Getenv("TEST_API_KEY"))
	})

	assert.Equal(t, "previous", os.Getenv("TEST_ENV"))
	_, present := os.LookupEnv("TEST_API_KEY")
	assert.False(t, present, "TEST_API_KEY should be unset again")
}
