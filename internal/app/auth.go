package app

import (
	"context"
	"strings"

	"github.com/oshokin/disk-bundler/internal/config"
	"github.com/oshokin/disk-bundler/internal/logger"
)

// ExecuteAuthSetTokenCommand executes the auth set-token command.
// It stores the given OAuth token in the configuration file.
func ExecuteAuthSetTokenCommand(ctx context.Context, cfg *config.Config, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		logger.Fatal(ctx, "Token cannot be empty")
		return
	}

	// Update configuration with the new token.
	cfg.AuthToken = token

	// Save configuration to file.
	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Info(ctx, "You can now start the server and browse public folders.")
}
