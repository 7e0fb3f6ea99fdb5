package client

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedisClient connects to the cache used by the rate limiter. Returns nil
// when no URL is configured; callers fall back to in-process limiting.
func InitRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("REDIS_URL not set, rate limiting falls back to in-memory")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("invalid REDIS_URL:", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// The limiter fails open, so a cold cache should not stop boot.
		log.Println("redis ping failed:", err)
	}

	return rdb
}
