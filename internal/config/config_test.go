package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/disk-bundler/internal/constants"
)

// validTestConfig returns a configuration that passes validation.
func validTestConfig() *Config {
	return &Config{
		AuthToken:              "test_token",
		ListenAddress:          ":8080",
		MediaRoot:              "/srv/media",
		CacheTTL:               "1h",
		CacheSize:              1024,
		PageLimit:              50,
		MaxConcurrentDownloads: 4,
		MaxArchiveSize:         "256MB",
		RequestTimeout:         "60s",
		LogLevel:               "info",
	}
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:tparallel // Subtests share viper's global state, so they are not parallel.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
auth_token: "test_token"
listen_address: ":8080"
media_root: "/srv/media"
cache_ttl: "1h"
page_limit: 50
max_concurrent_downloads: 4
max_archive_size: "256MB"
request_timeout: "60s"
log_level: "info"
`,
			expectError: false,
		},
		{
			name:           "non-existent file",
			configFilename: "non_existent.yaml",
			expectError:    true,
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid_config.yaml",
			configContent:  "auth_token: [unbalanced",
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, tt.configFilename)

			if tt.configContent != "" {
				require.NoError(t,
					os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions))
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, "test_token", cfg.AuthToken)
			assert.Equal(t, 50, cfg.PageLimit)
		})
	}
}

// TestLoadConfig_Defaults tests that unset fields receive defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal.yaml")
	require.NoError(t,
		os.WriteFile(configPath, []byte("auth_token: \"test_token\"\n"), constants.DefaultFilePermissions))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, DefaultListenAddress, cfg.ListenAddress)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultPageLimit, cfg.PageLimit)
	assert.Equal(t, int64(DefaultMaxConcurrentDownloads), cfg.MaxConcurrentDownloads)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(cfg *Config)
		expectedError error
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name: "empty auth token",
			mutate: func(cfg *Config) {
				cfg.AuthToken = "  "
			},
			expectedError: ErrEmptyAuthToken,
		},
		{
			name: "empty listen address",
			mutate: func(cfg *Config) {
				cfg.ListenAddress = ""
			},
			expectedError: ErrEmptyListenAddress,
		},
		{
			name: "negative cache ttl",
			mutate: func(cfg *Config) {
				cfg.CacheTTL = "-5m"
			},
			expectedError: ErrInvalidCacheTTL,
		},
		{
			name: "zero cache size",
			mutate: func(cfg *Config) {
				cfg.CacheSize = 0
			},
			expectedError: ErrInvalidCacheSize,
		},
		{
			name: "zero page limit",
			mutate: func(cfg *Config) {
				cfg.PageLimit = 0
			},
			expectedError: ErrInvalidPageLimit,
		},
		{
			name: "zero concurrent downloads",
			mutate: func(cfg *Config) {
				cfg.MaxConcurrentDownloads = 0
			},
			expectedError: ErrInvalidConcurrentDownloads,
		},
		{
			name: "negative request timeout",
			mutate: func(cfg *Config) {
				cfg.RequestTimeout = "-1s"
			},
			expectedError: ErrInvalidRequestTimeout,
		},
		{
			name: "unknown log level",
			mutate: func(cfg *Config) {
				cfg.LogLevel = "loud"
			},
			expectedError: ErrUnknownLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validTestConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfig_DerivedFields tests that validation fills the parsed fields.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validTestConfig()
	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, DiskAPIBaseURL, cfg.DiskAPIBaseURL)
	assert.Equal(t, time.Hour, cfg.ParsedCacheTTL)
	assert.Equal(t, int64(256*1000*1000), cfg.ParsedMaxArchiveSize)
	assert.Equal(t, 60*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
}

// TestValidateConfig_ArchiveSizeDisabled tests that "0" and "" disable the archive cap.
func TestValidateConfig_ArchiveSizeDisabled(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "0"} {
		cfg := validTestConfig()
		cfg.MaxArchiveSize = value

		require.NoError(t, ValidateConfig(cfg))
		assert.Zero(t, cfg.ParsedMaxArchiveSize)
	}
}

// TestValidateConfig_InvalidArchiveSize tests that a malformed size is rejected.
func TestValidateConfig_InvalidArchiveSize(t *testing.T) {
	t.Parallel()

	cfg := validTestConfig()
	cfg.MaxArchiveSize = "many bytes"

	require.Error(t, ValidateConfig(cfg))
}
