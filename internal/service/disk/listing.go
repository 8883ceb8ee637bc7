package disk

import (
	"context"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
	"github.com/oshokin/disk-bundler/internal/logger"
)

// ListItems returns the files of a public folder, optionally filtered by media type.
// Listings are served from the cache when a fresh entry exists; otherwise the folder
// is paged through at the configured page limit and the result is cached under the
// configured TTL. A page error terminates pagination and the items accumulated so
// far are returned, so the caller never sees a hard failure.
func (s *ServiceImpl) ListItems(ctx context.Context, publicKey, mediaType string) []*client.Resource {
	if items, ok := s.listingCache.Get(publicKey, mediaType); ok {
		logger.Debugf(ctx, "Listing cache hit for public key '%s' (media type: '%s')", publicKey, mediaType)

		return items
	}

	items := s.fetchItems(ctx, publicKey, mediaType)

	// Partial results from an early termination are cached as well:
	// the next request within the TTL sees the same view.
	s.listingCache.Add(publicKey, mediaType, items)

	return items
}

// fetchItems pages through the folder listing, collecting matching items.
func (s *ServiceImpl) fetchItems(ctx context.Context, publicKey, mediaType string) []*client.Resource {
	var (
		items  []*client.Resource
		limit  = s.cfg.PageLimit
		offset int
	)

	for {
		response, err := s.diskClient.GetPublicResources(ctx, publicKey, offset, limit)
		if err != nil {
			logger.Warnf(ctx,
				"Failed to fetch listing page for public key '%s' at offset %d: %v",
				publicKey, offset, err)

			return items
		}

		if response.Embedded == nil {
			return items
		}

		page := response.Embedded.Items
		for _, item := range page {
			if mediaType == "" || item.MediaType == mediaType {
				items = append(items, item)
			}
		}

		// A short page is the last one. Stopping here keeps a listing of
		// exactly N*limit items from issuing a trailing empty-page request.
		if len(page) < limit {
			return items
		}

		offset += limit
	}
}
