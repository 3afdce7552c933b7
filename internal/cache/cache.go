package cache

import (
	"context"
	"strings"
	"time"

	"match-engine/internal/models"
)

// DefaultTTL is applied when Set receives a non-positive TTL.
const DefaultTTL = time.Hour

// Store is the result cache consulted and populated by the engine. Keys are
// the stable string contract "{userId}:{category}:{listingId}". A concurrent
// miss-compute-set race for the same key is acceptable: last write wins and
// a duplicate computation is harmless.
type Store interface {
	Get(ctx context.Context, userID, listingID string, category models.Category) *models.Result
	Set(ctx context.Context, result *models.Result, ttl time.Duration)
	Has(ctx context.Context, userID, listingID string, category models.Category) bool
	Invalidate(ctx context.Context, userID, listingID string, category models.Category)
	InvalidateForUser(ctx context.Context, userID string)
	InvalidateForListing(ctx context.Context, listingID string)
	Clear(ctx context.Context)
	Size(ctx context.Context) int
	Cleanup(ctx context.Context)
}

// Key builds the cache key for a scoring result. The format is a stable
// contract; any cross-process sharing of cache state must preserve it.
func Key(userID string, category models.Category, listingID string) string {
	return userID + ":" + string(category) + ":" + listingID
}

// keyMatchesListing reports whether the key's listing-id segment equals
// listingID. Matching on the token rather than a raw substring avoids
// collisions when one listing id is a prefix of another.
func keyMatchesListing(key, listingID string) bool {
	idx := strings.LastIndexByte(key, ':')
	if idx < 0 {
		return false
	}
	return key[idx+1:] == listingID
}
