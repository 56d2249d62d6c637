// middleware/ratelimit.go
package middleware

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Token bucket rate limiter implementation
type TokenBucket struct {
	tokens         float64
	maxTokens      float64
	refillRate     float64 // tokens per second
	lastRefillTime time.Time
	mu             sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:         maxTokens,
		maxTokens:      maxTokens,
		refillRate:     refillRate,
		lastRefillTime: time.Now(),
	}
}

func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefillTime).Seconds()
	tb.tokens += elapsed * tb.refillRate
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastRefillTime = now

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// RateLimiter keeps one bucket per client IP.
type RateLimiter struct {
	buckets    map[string]*TokenBucket
	mu         sync.RWMutex
	maxTokens  float64
	refillRate float64
}

func NewRateLimiter(maxTokens, refillRate float64) *RateLimiter {
	rl := &RateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		bucket, exists = rl.buckets[ip]
		if !exists {
			bucket = NewTokenBucket(rl.maxTokens, rl.refillRate)
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	return bucket.Allow()
}

// cleanup drops idle buckets so the map does not grow without bound
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, bucket := range rl.buckets {
			bucket.mu.Lock()
			idle := time.Since(bucket.lastRefillTime) > 30*time.Minute
			bucket.mu.Unlock()
			if idle {
				delete(rl.buckets, ip)
			}
		}
		rl.mu.Unlock()
	}
}

var (
	generalLimiter = NewRateLimiter(envFloat("RATE_LIMIT_BURST", 60), envFloat("RATE_LIMIT_RPS", 10))
	authLimiter    = NewRateLimiter(envFloat("AUTH_RATE_LIMIT_BURST", 10), envFloat("AUTH_RATE_LIMIT_RPS", 0.5))
)

// FiberRateLimitMiddleware applies the general per-IP limit.
func FiberRateLimitMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !generalLimiter.Allow(c.IP()) {
			return c.Status(429).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests. Please slow down.",
			})
		}
		return c.Next()
	}
}

// FiberAuthRateLimitMiddleware applies the stricter limit used on the
// login/register endpoints.
func FiberAuthRateLimitMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authLimiter.Allow(c.IP()) {
			return c.Status(429).JSON(fiber.Map{
				"success": false,
				"error":   "Too many authentication attempts. Try again later.",
			})
		}
		return c.Next()
	}
}

func envFloat(key string, defaultVal float64) float64 {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			return v
		}
	}
	return defaultVal
}
