package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheatandcat/KAWKAW/internal/domain"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCache(client, 2*time.Minute, 5*time.Minute), mr
}

func TestRedisCache_ProductReviewsRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	reviews := []*domain.Review{
		{ID: 2, ProductID: "1", Nickname: "A", Rating: 5, Title: "t2", Comment: "c2", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: 1, ProductID: "1", Nickname: "B", Rating: 3, Title: "t1", Comment: "c1", CreatedAt: time.Now().UTC().Truncate(time.Second).Add(-time.Hour)},
	}

	require.NoError(t, cache.SetProductReviews(ctx, "1", reviews))

	got, err := cache.GetProductReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, reviews[0].ID, got[0].ID)
	assert.Equal(t, reviews[1].Nickname, got[1].Nickname)
}

func TestRedisCache_GetProductReviews_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetProductReviews(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestRedisCache_InvalidateProductReviews(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetProductReviews(ctx, "1", []*domain.Review{{ID: 1, ProductID: "1"}}))
	require.NoError(t, cache.InvalidateProductReviews(ctx, "1"))

	_, err := cache.GetProductReviews(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisCache_ProductReviewsTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetProductReviews(ctx, "1", []*domain.Review{{ID: 1, ProductID: "1"}}))

	mr.FastForward(3 * time.Minute)

	_, err := cache.GetProductReviews(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisCache_RatingSummaryRoundtrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	summary := &domain.RatingSummary{ProductID: "5", Average: 4.3, Count: 12}
	require.NoError(t, cache.SetRatingSummary(ctx, summary))

	got, err := cache.GetRatingSummary(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, 4.3, got.Average)
	assert.Equal(t, 12, got.Count)
}

func TestRedisCache_GetRatingSummary_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetRatingSummary(context.Background(), "99")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}
