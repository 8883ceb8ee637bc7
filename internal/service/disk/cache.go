package disk

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	client "github.com/oshokin/disk-bundler/internal/client/disk"
)

// ListingCache stores folder listings for the configured TTL.
// Entries are keyed by public key and media type filter,
// overwritten on write, and invalidated only by expiry.
type ListingCache interface {
	// Get returns the cached listing and whether it was present.
	Get(publicKey, mediaType string) ([]*client.Resource, bool)
	// Add stores a listing, replacing any previous entry for the same key.
	Add(publicKey, mediaType string, items []*client.Resource)
}

// ListingCacheImpl implements ListingCache on top of an expiring LRU.
type ListingCacheImpl struct {
	entries *expirable.LRU[string, []*client.Resource]
}

// NewListingCache creates a listing cache holding up to size entries,
// each expiring ttl after it was written.
func NewListingCache(size int, ttl time.Duration) ListingCache {
	return &ListingCacheImpl{
		entries: expirable.NewLRU[string, []*client.Resource](size, nil, ttl),
	}
}

// Get returns the cached listing and whether it was present.
func (c *ListingCacheImpl) Get(publicKey, mediaType string) ([]*client.Resource, bool) {
	return c.entries.Get(listingCacheKey(publicKey, mediaType))
}

// Add stores a listing, replacing any previous entry for the same key.
func (c *ListingCacheImpl) Add(publicKey, mediaType string, items []*client.Resource) {
	c.entries.Add(listingCacheKey(publicKey, mediaType), items)
}

// listingCacheKey builds the cache key for a public key and media type pair.
// The separator cannot appear in a media type, so keys never collide.
func listingCacheKey(publicKey, mediaType string) string {
	return publicKey + "|" + mediaType
}
