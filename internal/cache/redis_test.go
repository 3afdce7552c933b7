package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine/internal/common/logger"
	"match-engine/internal/models"
)

func newRedisTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, logger.NewTestLogger(t)), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t)

	result := testResult("u1", "l1", models.CategoryJob)
	store.Set(ctx, result, time.Hour)

	got := store.Get(ctx, "u1", "l1", models.CategoryJob)
	require.NotNil(t, got)
	// Redis round-trips through JSON: value equality, not identity.
	assert.Equal(t, result.OverallScore, got.OverallScore)
	assert.Equal(t, result.UserID, got.UserID)
	assert.Equal(t, result.ListingID, got.ListingID)
	assert.Equal(t, result.Category, got.Category)
	assert.True(t, store.Has(ctx, "u1", "l1", models.CategoryJob))
}

func TestRedisStore_KeyFormatContract(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t)

	store.Set(ctx, testResult("u1", "l1", models.CategoryJob), time.Hour)

	assert.True(t, mr.Exists("u1:job:l1"))
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisTestStore(t)

	store.Set(ctx, testResult("u1", "l1", models.CategoryJob), time.Minute)
	require.NotNil(t, store.Get(ctx, "u1", "l1", models.CategoryJob))

	mr.FastForward(2 * time.Minute)

	assert.Nil(t, store.Get(ctx, "u1", "l1", models.CategoryJob))
	assert.Equal(t, 0, store.Size(ctx))
}

func TestRedisStore_RefusesIncompleteKeys(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t)

	store.Set(ctx, &models.Result{ListingID: "l1", Category: models.CategoryJob}, time.Hour)

	assert.Equal(t, 0, store.Size(ctx))
}

func TestRedisStore_InvalidationScoping(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t)

	store.Set(ctx, testResult("u1", "l1", models.CategoryJob), time.Hour)
	store.Set(ctx, testResult("u1", "l2", models.CategoryRental), time.Hour)
	store.Set(ctx, testResult("u2", "l1", models.CategoryJob), time.Hour)
	store.Set(ctx, testResult("u2", "l10", models.CategoryJob), time.Hour)

	store.InvalidateForUser(ctx, "u1")
	assert.Nil(t, store.Get(ctx, "u1", "l1", models.CategoryJob))
	assert.Nil(t, store.Get(ctx, "u1", "l2", models.CategoryRental))
	assert.NotNil(t, store.Get(ctx, "u2", "l1", models.CategoryJob))

	store.InvalidateForListing(ctx, "l1")
	assert.Nil(t, store.Get(ctx, "u2", "l1", models.CategoryJob))
	// Prefix-sharing listing ids survive token-based invalidation.
	assert.NotNil(t, store.Get(ctx, "u2", "l10", models.CategoryJob))
}

func TestRedisStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisTestStore(t)

	store.Set(ctx, testResult("u1", "l1", models.CategoryJob), time.Hour)
	store.Set(ctx, testResult("u2", "l2", models.CategoryJob), time.Hour)
	require.Equal(t, 2, store.Size(ctx))

	store.Clear(ctx)
	assert.Equal(t, 0, store.Size(ctx))
}
