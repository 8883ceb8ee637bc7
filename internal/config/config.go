// Package config loads, validates, and persists application settings
// from a YAML configuration file using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/disk-bundler/internal/constants"
	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// AuthToken is the OAuth token used to authenticate against the Yandex.Disk API.
	AuthToken string `mapstructure:"auth_token"`
	// ListenAddress is the address the web server binds to (e.g., ":8080").
	ListenAddress string `mapstructure:"listen_address"`
	// MediaRoot is the directory local archive requests are resolved against.
	MediaRoot string `mapstructure:"media_root"`
	// CacheTTL is the lifetime of cached folder listings (e.g., "1h").
	CacheTTL string `mapstructure:"cache_ttl"`
	// CacheSize is the maximum number of listing entries kept in the cache.
	CacheSize int `mapstructure:"cache_size"`
	// PageLimit is the number of items requested per listing page.
	PageLimit int `mapstructure:"page_limit"`
	// MaxConcurrentDownloads is the maximum number of files fetched simultaneously
	// while building an archive.
	MaxConcurrentDownloads int64 `mapstructure:"max_concurrent_downloads"`
	// MaxArchiveSize caps the accumulated size of archive entries (e.g., "256MB").
	// Empty or "0" disables the cap.
	MaxArchiveSize string `mapstructure:"max_archive_size"`
	// RequestTimeout bounds every outbound HTTP call (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// DiskAPIBaseURL is the base URL for the Yandex.Disk public API (set automatically).
	DiskAPIBaseURL string
	// ParsedCacheTTL is the parsed listing cache lifetime.
	ParsedCacheTTL time.Duration
	// ParsedMaxArchiveSize is the parsed archive size cap in bytes.
	ParsedMaxArchiveSize int64
	// ParsedRequestTimeout is the parsed outbound HTTP call timeout.
	ParsedRequestTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DiskAPIBaseURL is the base URL of the Yandex.Disk public resources API.
	DiskAPIBaseURL = "https://cloud-api.yandex.net/v1/disk/public"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".disk-bundler.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged HTTP dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultListenAddress is the address the server binds to when none is configured.
	DefaultListenAddress = ":8080"

	// DefaultCacheTTL is the listing cache lifetime when none is configured.
	// Mirrors the one-hour expiry the listing consumers rely on.
	DefaultCacheTTL = "1h"

	// DefaultCacheSize is the listing cache capacity when none is configured.
	DefaultCacheSize = 1024

	// DefaultPageLimit is the listing page size when none is configured.
	DefaultPageLimit = 50

	// DefaultMaxConcurrentDownloads is the archive fetch parallelism when none is configured.
	DefaultMaxConcurrentDownloads = 4

	// DefaultRequestTimeout bounds outbound HTTP calls when none is configured.
	DefaultRequestTimeout = "60s"

	// DefaultLogLevel is the logging verbosity when none is configured.
	DefaultLogLevel = "info"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyAuthToken indicates that the OAuth token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty")
	// ErrEmptyListenAddress indicates that the listen address is missing.
	ErrEmptyListenAddress = errors.New("listen address cannot be empty")
	// ErrInvalidCacheTTL indicates that the cache TTL setting is invalid.
	ErrInvalidCacheTTL = errors.New("cache_ttl must be positive")
	// ErrInvalidCacheSize indicates that the cache size setting is invalid.
	ErrInvalidCacheSize = errors.New("cache_size must be a positive integer")
	// ErrInvalidPageLimit indicates that the page limit setting is invalid.
	ErrInvalidPageLimit = errors.New("page_limit must be a positive integer")
	// ErrInvalidConcurrentDownloads indicates that the concurrent downloads count is invalid.
	ErrInvalidConcurrentDownloads = errors.New("max concurrent downloads must be a positive integer")
	// ErrInvalidRequestTimeout indicates that the request timeout setting is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	viper.SetDefault("listen_address", DefaultListenAddress)
	viper.SetDefault("cache_ttl", DefaultCacheTTL)
	viper.SetDefault("cache_size", DefaultCacheSize)
	viper.SetDefault("page_limit", DefaultPageLimit)
	viper.SetDefault("max_concurrent_downloads", DefaultMaxConcurrentDownloads)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("log_level", DefaultLogLevel)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	authToken := strings.TrimSpace(cfg.AuthToken)
	if authToken == "" {
		return ErrEmptyAuthToken
	}

	cfg.DiskAPIBaseURL = DiskAPIBaseURL

	if strings.TrimSpace(cfg.ListenAddress) == "" {
		return ErrEmptyListenAddress
	}

	cfg.ParsedCacheTTL, err = time.ParseDuration(cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to parse cache TTL: %w", err)
	}

	if cfg.ParsedCacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}

	if cfg.CacheSize <= 0 {
		return ErrInvalidCacheSize
	}

	if cfg.PageLimit <= 0 {
		return ErrInvalidPageLimit
	}

	if cfg.MaxConcurrentDownloads <= 0 {
		return ErrInvalidConcurrentDownloads
	}

	maxArchiveSize := strings.TrimSpace(cfg.MaxArchiveSize)
	if maxArchiveSize != "" && maxArchiveSize != "0" {
		var parsedMaxArchiveSize uint64

		parsedMaxArchiveSize, err = humanize.ParseBytes(maxArchiveSize)
		if err != nil {
			return fmt.Errorf("failed to parse max archive size: %w", err)
		}

		// The archive builder compares against int64 byte counts.
		cfg.ParsedMaxArchiveSize = utils.SafeUint64ToInt64(parsedMaxArchiveSize)
	}

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
// Only the auth_token value is rewritten; everything else is left untouched.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AuthToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the auth_token value in the node tree.
	updateAuthTokenInNode(&node, cfg.AuthToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, authToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("auth_token", authToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAuthTokenInNode updates the auth_token value in the YAML node tree.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "auth_token" {
			// Update the value while preserving style.
			valueNode.Value = authToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
