package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wheatandcat/KAWKAW/internal/domain"
)

// RedisCache holds the derived review data kept in Redis: per-product
// review lists (cache-aside with TTL) and the rating summaries maintained
// by the rating worker.
type RedisCache struct {
	client           *redis.Client
	reviewsListTTL   time.Duration
	ratingSummaryTTL time.Duration
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(client *redis.Client, reviewsListTTL, ratingSummaryTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:           client,
		reviewsListTTL:   reviewsListTTL,
		ratingSummaryTTL: ratingSummaryTTL,
	}
}

func (c *RedisCache) reviewsKey(productID string) string {
	return fmt.Sprintf("product:%s:reviews", productID)
}

func (c *RedisCache) ratingSummaryKey(productID string) string {
	return fmt.Sprintf("product:%s:rating_summary", productID)
}

// GetProductReviews retrieves the cached review list for a product.
// Returns domain.ErrNotFound on a cache miss.
func (c *RedisCache) GetProductReviews(ctx context.Context, productID string) ([]*domain.Review, error) {
	val, err := c.client.Get(ctx, c.reviewsKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var reviews []*domain.Review
	if err := json.Unmarshal([]byte(val), &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// SetProductReviews stores the review list for a product
func (c *RedisCache) SetProductReviews(ctx context.Context, productID string, reviews []*domain.Review) error {
	data, err := json.Marshal(reviews)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.reviewsKey(productID), data, c.reviewsListTTL).Err()
}

// InvalidateProductReviews drops the cached review list for a product
func (c *RedisCache) InvalidateProductReviews(ctx context.Context, productID string) error {
	return c.client.Del(ctx, c.reviewsKey(productID)).Err()
}

// GetRatingSummary retrieves the rating summary for a product.
// Returns domain.ErrNotFound when no summary has been computed yet.
func (c *RedisCache) GetRatingSummary(ctx context.Context, productID string) (*domain.RatingSummary, error) {
	val, err := c.client.Get(ctx, c.ratingSummaryKey(productID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var summary domain.RatingSummary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// SetRatingSummary stores the rating summary computed by the rating worker
func (c *RedisCache) SetRatingSummary(ctx context.Context, summary *domain.RatingSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.ratingSummaryKey(summary.ProductID), data, c.ratingSummaryTTL).Err()
}
