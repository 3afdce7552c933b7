package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

// RedisStore keeps scoring results in Redis so separate processes can share
// one cache. Keys follow the same "{userId}:{category}:{listingId}" contract
// as the in-memory store and the store assumes a dedicated database.
//
// Results round-trip through JSON, so unlike MemoryStore a hit returns an
// equal value, not the identical pointer.
type RedisStore struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisStore(client *redis.Client, log logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "result-cache-redis"}),
	}
}

func (s *RedisStore) Get(ctx context.Context, userID, listingID string, category models.Category) *models.Result {
	key := Key(userID, category, listingID)
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache read failed", map[string]interface{}{"key": key, "error": err})
		}
		return nil
	}

	var result models.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		s.logger.Warn("cache entry corrupt, dropping", map[string]interface{}{"key": key, "error": err})
		s.client.Del(ctx, key)
		return nil
	}
	return &result
}

func (s *RedisStore) Set(ctx context.Context, result *models.Result, ttl time.Duration) {
	if !result.HasCacheKey() {
		s.logger.Warn("refusing to cache result with incomplete key", nil)
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("cache entry marshal failed", map[string]interface{}{"error": err})
		return
	}

	key := Key(result.UserID, result.Category, result.ListingID)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", map[string]interface{}{"key": key, "error": err})
	}
}

func (s *RedisStore) Has(ctx context.Context, userID, listingID string, category models.Category) bool {
	n, err := s.client.Exists(ctx, Key(userID, category, listingID)).Result()
	return err == nil && n > 0
}

func (s *RedisStore) Invalidate(ctx context.Context, userID, listingID string, category models.Category) {
	s.client.Del(ctx, Key(userID, category, listingID))
}

func (s *RedisStore) InvalidateForUser(ctx context.Context, userID string) {
	s.deleteMatching(ctx, userID+":*", func(string) bool { return true })
}

func (s *RedisStore) InvalidateForListing(ctx context.Context, listingID string) {
	s.deleteMatching(ctx, "*:"+listingID, func(key string) bool {
		return keyMatchesListing(key, listingID)
	})
}

func (s *RedisStore) deleteMatching(ctx context.Context, pattern string, accept func(string) bool) {
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		if key := iter.Val(); accept(key) {
			keys = append(keys, key)
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("cache scan failed", map[string]interface{}{"pattern": pattern, "error": err})
	}
	if len(keys) > 0 {
		s.client.Del(ctx, keys...)
	}
}

func (s *RedisStore) Clear(ctx context.Context) {
	if err := s.client.FlushDB(ctx).Err(); err != nil {
		s.logger.Warn("cache clear failed", map[string]interface{}{"error": err})
	}
}

func (s *RedisStore) Size(ctx context.Context) int {
	n, err := s.client.DBSize(ctx).Result()
	if err != nil {
		return 0
	}
	return int(n)
}

// Cleanup is a no-op: Redis evicts expired keys server-side.
func (s *RedisStore) Cleanup(context.Context) {}
