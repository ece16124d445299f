package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-7b282/portfolio-backend/internal/projects/domain"
)

const (
	publicListKey   = "portfolio:projects:public"
	DefaultCacheTTL = 5 * time.Minute
)

// Cache is a Redis-backed cache of the public project listing. A nil *Cache
// is valid and behaves as a permanent miss, so the app runs fine without
// Redis configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached listing, or (nil, false) on miss or error.
func (c *Cache) Get(ctx context.Context) ([]domain.Project, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, publicListKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("projects cache get error: %v", err)
		return nil, false
	}

	var out []domain.Project
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("projects cache decode error: %v", err)
		return nil, false
	}
	return out, true
}

// Set stores the listing with the configured TTL. Failures are logged and
// otherwise ignored; the cache is never load-bearing.
func (c *Cache) Set(ctx context.Context, projects []domain.Project) {
	if c == nil {
		return
	}

	data, err := json.Marshal(projects)
	if err != nil {
		log.Printf("projects cache encode error: %v", err)
		return
	}
	if err := c.client.Set(ctx, publicListKey, data, c.ttl).Err(); err != nil {
		log.Printf("projects cache set error: %v", err)
	}
}

// Invalidate drops the cached listing. Called after every project mutation.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, publicListKey).Err(); err != nil {
		log.Printf("projects cache invalidate error: %v", err)
	}
}
