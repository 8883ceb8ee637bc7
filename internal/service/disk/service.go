package disk

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"bytes"
	"context"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
	"github.com/oshokin/disk-bundler/internal/config"
)

// Service provides the operations the web surface is built on:
// cached folder listings, download link resolution, and ZIP bundling.
type Service interface {
	// ListItems returns the files of a public folder, optionally filtered by media type.
	// Page errors terminate pagination; items accumulated so far are returned.
	ListItems(ctx context.Context, publicKey, mediaType string) []*client.Resource
	// ResolveDownloadLink resolves a direct download URL for one file of a public folder.
	// An API non-success yields an empty link with a nil error.
	ResolveDownloadLink(ctx context.Context, publicKey, filePath string) (string, error)
	// BuildArchive fetches the selected files of a public folder and bundles them into a ZIP.
	BuildArchive(ctx context.Context, publicKey string, filePaths []string) (*bytes.Buffer, error)
	// BuildLocalArchive bundles files from the media root directory into a ZIP.
	BuildLocalArchive(ctx context.Context, filePaths []string) (*bytes.Buffer, error)
}

// ServiceImpl implements the aggregation service over the Yandex.Disk public API.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// diskClient is the client for interacting with the Yandex.Disk public API.
	diskClient client.Client
	// listingCache stores folder listings for the configured TTL.
	listingCache ListingCache
}

// NewService creates a service instance with dependency-injected components.
func NewService(
	cfg *config.Config,
	diskClient client.Client,
	listingCache ListingCache,
) Service {
	return &ServiceImpl{
		cfg:          cfg,
		diskClient:   diskClient,
		listingCache: listingCache,
	}
}
