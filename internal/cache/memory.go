package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

type entry struct {
	result    *models.Result
	expiresAt time.Time
}

// MemoryStore is the default in-process result cache. It hands cached results
// back by reference, expires entries lazily on read, and guards all access
// with a single mutex. State is rebuilt from empty on process restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	logger  logger.Logger
	now     func() time.Time
}

func NewMemoryStore(log logger.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		logger:  log.WithFields(map[string]interface{}{"component": "result-cache"}),
		now:     time.Now,
	}
}

// Get returns the cached result, or nil on miss. Entries past their expiry
// are evicted and reported as misses.
func (s *MemoryStore) Get(_ context.Context, userID, listingID string, category models.Category) *models.Result {
	key := Key(userID, category, listingID)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return nil
	}
	return e.result
}

// Set stores the result under its own key fields. Results missing any key
// field are refused with a warning; an incomplete key is never cached.
func (s *MemoryStore) Set(_ context.Context, result *models.Result, ttl time.Duration) {
	if !result.HasCacheKey() {
		s.logger.Warn("refusing to cache result with incomplete key", map[string]interface{}{
			"userId":    resultField(result, func(r *models.Result) string { return r.UserID }),
			"listingId": resultField(result, func(r *models.Result) string { return r.ListingID }),
		})
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	key := Key(result.UserID, result.Category, result.ListingID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{result: result, expiresAt: s.now().Add(ttl)}
}

func (s *MemoryStore) Has(ctx context.Context, userID, listingID string, category models.Category) bool {
	return s.Get(ctx, userID, listingID, category) != nil
}

func (s *MemoryStore) Invalidate(_ context.Context, userID, listingID string, category models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, Key(userID, category, listingID))
}

// InvalidateForUser removes every entry belonging to the user.
func (s *MemoryStore) InvalidateForUser(_ context.Context, userID string) {
	prefix := userID + ":"

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
}

// InvalidateForListing removes every entry for the listing across all users.
func (s *MemoryStore) InvalidateForListing(_ context.Context, listingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.entries {
		if keyMatchesListing(key, listingID) {
			delete(s.entries, key)
		}
	}
}

func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry)
}

func (s *MemoryStore) Size(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup sweeps out expired entries. Expiry is lazy on read, so this exists
// for periodic maintenance only.
func (s *MemoryStore) Cleanup(_ context.Context) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}

func resultField(r *models.Result, f func(*models.Result) string) string {
	if r == nil {
		return ""
	}
	return f(r)
}
