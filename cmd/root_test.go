package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/disk-bundler/internal/config"
	"github.com/oshokin/disk-bundler/internal/constants"
)

const testBaseConfigContent = `
auth_token: "config_token"
listen_address: ":9090"
media_root: "/config/media"
cache_ttl: "1h"
cache_size: 1024
page_limit: 50
max_concurrent_downloads: 1
request_timeout: "60s"
log_level: "info"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, ":9090", cfg.ListenAddress)
				assert.Equal(t, "/config/media", cfg.MediaRoot)
				assert.Equal(t, "info", cfg.LogLevel)
			},
		},
		{
			name: "listen flag only - override listen address",
			flags: map[string]string{
				"listen": ":8000",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, ":8000", cfg.ListenAddress)
				assert.Equal(t, "/config/media", cfg.MediaRoot)
			},
		},
		{
			name: "media-root flag only - override media root",
			flags: map[string]string{
				"media-root": "/flag/media",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, ":9090", cfg.ListenAddress)
				assert.Equal(t, "/flag/media", cfg.MediaRoot)
			},
		},
		{
			name: "log-level flag only - override log level",
			flags: map[string]string{
				"log-level": "debug",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"listen":     ":8888",
				"media-root": "/all/media",
				"log-level":  "warn",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, ":8888", cfg.ListenAddress)
				assert.Equal(t, "/all/media", cfg.MediaRoot)
				assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with flags.
			testCmd := &cobra.Command{
				Use: "test",
			}

			// Add the same flags as root command.
			testCmd.Flags().StringP("listen", "a", "", "listen address")
			testCmd.Flags().StringP("media-root", "m", "", "media root directory")
			testCmd.Flags().StringP("log-level", "l", "", "logging verbosity level")

			// Set flag values.
			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Derived fields are filled during validation.
			assert.Equal(t, time.Hour, cfg.ParsedCacheTTL)
			assert.Equal(t, config.DiskAPIBaseURL, cfg.DiskAPIBaseURL)

			// Verify expectations.
			tt.expectedConfig(t, cfg)
		})
	}
}
