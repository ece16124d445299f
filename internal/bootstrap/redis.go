package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-7b282/portfolio-backend/config"
)

// OpenRedis connects the optional cache. Returns (nil, nil) when no address
// is configured so the app runs cache-less.
func OpenRedis(ctx context.Context, cfg *config.CacheConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Printf("redis connected addr=%s", cfg.Addr)
	return client, nil
}
