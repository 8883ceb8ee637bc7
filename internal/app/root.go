package app

import (
	"context"

	disk_client "github.com/oshokin/disk-bundler/internal/client/disk"
	"github.com/oshokin/disk-bundler/internal/config"
	"github.com/oshokin/disk-bundler/internal/logger"
	"github.com/oshokin/disk-bundler/internal/server"
	disk_service "github.com/oshokin/disk-bundler/internal/service/disk"
)

// ExecuteRootCommand is the entry point for the application.
// It initializes the Disk client, the listing cache, and the aggregation
// service, and serves the web surface until the context is canceled.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	diskClient, err := disk_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize disk client: %v", err)
	}

	listingCache := disk_service.NewListingCache(cfg.CacheSize, cfg.ParsedCacheTTL)
	s := disk_service.NewService(cfg, diskClient, listingCache)

	if err = server.NewServer(cfg, s).Run(ctx); err != nil {
		logger.Fatalf(ctx, "Server failed: %v", err)
	}

	logger.Info(ctx, "Server stopped")
}
