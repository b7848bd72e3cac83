package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load sets the expected default values when
// no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LIBRARIAN_SERVER_LOG_LEVEL":          "",
		"LIBRARIAN_NOTIFICATION_MAX_ATTEMPTS": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 5, cfg.Notification.MaxAttempts, "Default notification attempts should be 5")
}

// TestLoadFromEnv verifies that Load correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LIBRARIAN_SERVER_LOG_LEVEL":          "debug",
		"LIBRARIAN_NOTIFICATION_MAX_ATTEMPTS": "3",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.Notification.MaxAttempts)
}

// TestLoadRejectsInvalidValues verifies that validation failures surface as errors.
func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("unknown log level", func(t *testing.T) {
		cleanup := setupEnv(t, map[string]string{
			"LIBRARIAN_SERVER_LOG_LEVEL":          "verbose",
			"LIBRARIAN_NOTIFICATION_MAX_ATTEMPTS": "",
		})
		defer cleanup()

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive attempts", func(t *testing.T) {
		cleanup := setupEnv(t, map[string]string{
			"LIBRARIAN_SERVER_LOG_LEVEL":          "",
			"LIBRARIAN_NOTIFICATION_MAX_ATTEMPTS": "-1",
		})
		defer cleanup()

		_, err := Load()
		assert.Error(t, err)
	})
}
