package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const lastModTTL = time.Hour

// LastModCache caches last-modifier lookups in Redis.
// Key format: lastmod:<product_name>
type LastModCache struct {
	client *redis.Client
}

// NewLastModCache creates a LastModCache wrapping the given Redis client.
func NewLastModCache(client *redis.Client) *LastModCache {
	return &LastModCache{client: client}
}

// Get returns the cached last modifier for a product, if present.
func (c *LastModCache) Get(ctx context.Context, productName string) (string, bool, error) {
	username, err := c.client.Get(ctx, c.key(productName)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lastmod cache get: %w", err)
	}
	return username, true, nil
}

// Set caches the last modifier for a product (expires after lastModTTL).
func (c *LastModCache) Set(ctx context.Context, productName, username string) error {
	return c.client.Set(ctx, c.key(productName), username, lastModTTL).Err()
}

// Invalidate drops the cached value after a new event names the product.
func (c *LastModCache) Invalidate(ctx context.Context, productName string) error {
	return c.client.Del(ctx, c.key(productName)).Err()
}

func (c *LastModCache) key(productName string) string {
	return "lastmod:" + productName
}
