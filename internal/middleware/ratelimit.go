package middleware

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter throttles clients with a fixed window counter in Redis. When no
// Redis client is configured it falls back to per-client token buckets in
// memory. Redis errors fail open: a broken cache must not take the API down.
type RateLimiter struct {
	rdb *redis.Client

	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const visitorIdleTTL = 10 * time.Minute

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	rl := &RateLimiter{
		rdb:      rdb,
		visitors: make(map[string]*visitor),
	}
	if rdb == nil {
		go rl.janitor()
	}
	return rl
}

// janitor drops idle visitor entries so the map does not grow without bound.
func (rl *RateLimiter) janitor() {
	for range time.Tick(time.Minute) {
		rl.sweep()
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, v := range rl.visitors {
		if time.Since(v.lastSeen) > visitorIdleTTL {
			delete(rl.visitors, key)
		}
	}
}

// Limit enforces maxRequests per window for each client IP under the given
// key prefix.
func (rl *RateLimiter) Limit(prefix string, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c, prefix, maxRequests, window) {
				return apperr.New(apperr.CodeRateLimitExceeded, "Too many requests. Please try again later.", 429)
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(c echo.Context, prefix string, maxRequests int, window time.Duration) bool {
	ip := c.RealIP()
	if rl.rdb == nil {
		return rl.allowInMemory(prefix+":"+ip, maxRequests, window)
	}

	ctx := c.Request().Context()
	key := fmt.Sprintf("rate_limit:%s:%s", prefix, ip)

	count, err := rl.rdb.Incr(ctx, key).Result()
	if err != nil {
		log.Println("rate limiter redis error:", err)
		return true
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, key, window).Err(); err != nil {
			log.Println("rate limiter expire error:", err)
		}
	}
	return count <= int64(maxRequests)
}

func (rl *RateLimiter) allowInMemory(key string, maxRequests int, window time.Duration) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(window/time.Duration(maxRequests)), maxRequests)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}
