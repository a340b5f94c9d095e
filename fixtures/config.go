package fixtures

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// ServiceConfig is the canned configuration handed to tests that need one.
// Timeout is in seconds.
type ServiceConfig struct {
	APIKey      string  `yaml:"api_key" json:"api_key"`
	Model       string  `yaml:"model" json:"model"`
	Temperature float64 `yaml:"temperature" json:"temperature"`
	MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
	Timeout     int     `yaml:"timeout" json:"timeout"`
	BaseURL     string  `yaml:"base_url" json:"base_url"`
	Debug       bool    `yaml:"debug" json:"debug"`
}

// NewServiceConfig returns the standard mock configuration.
func NewServiceConfig() ServiceConfig {
	return ServiceConfig{
		APIKey:      "test_api_key",
		Model:       "test_model",
		Temperature: 0.7,
		MaxTokens:   1000,
		Timeout:     30,
		BaseURL:     "https://api.example.com",
		Debug:       true,
	}
}

// WriteConfigFile writes the standard mock configuration as config.yaml in the
// given directory and returns its path.
func WriteConfigFile(t TestingT, dir string) string {
	data, err := yaml.Marshal(NewServiceConfig())
	require.NoError(t, err)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

// ReadConfigFile parses a configuration file previously written by
// WriteConfigFile.
func ReadConfigFile(t TestingT, path string) ServiceConfig {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var config ServiceConfig
	require.NoError(t, yaml.Unmarshal(data, &config))
	return config
}
