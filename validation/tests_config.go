package validation

import (
	"github.com/stretchr/testify/assert"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoServiceConfigTests(t *T) {
	t.Run("has the documented values", func(t *T) {
		config := fixtures.NewServiceConfig()
		assert.Equal(t, "test_api_key", config.APIKey)
		assert.Equal(t, "test_model", config.Model)
		assert.Equal(t, 0.7, config.Temperature)
		assert.Equal(t, 1000, config.MaxTokens)
		assert.Equal(t, 30, config.Timeout)
		assert.Equal(t, "https://api.example.com", config.BaseURL)
		assert.True(t, config.Debug)
	})

	t.Run("round-trips through a YAML file", func(t *T) {
		dir := fixtures.TempDir(t)
		path := fixtures.WriteConfigFile(t, dir)
		loaded := fixtures.ReadConfigFile(t, path)
		assert.Equal(t, fixtures.NewServiceConfig(), loaded)
	})
}
