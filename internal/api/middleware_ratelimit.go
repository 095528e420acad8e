package api

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const (
	rateLimitPerSecond = 25
	rateLimitBurst     = 50
	limiterIdleTTL     = 10 * time.Minute
)

const msgTooManyRequests = "Limite de requisições excedido. Tente novamente em instantes."

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per client IP. Idle buckets are
// dropped opportunistically while the map is locked.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
}

func newRateLimiter(perSecond float64, burst int) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}
}

func (limiter *rateLimiter) allow(clientIP string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, ok := limiter.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[clientIP] = client
	}
	client.lastSeen = now

	if len(limiter.clients) > limiter.burst*4 {
		limiter.pruneLocked(now)
	}
	return client.limiter.Allow()
}

func (limiter *rateLimiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL)
	for ip, client := range limiter.clients {
		if client.lastSeen.Before(cutoff) {
			delete(limiter.clients, ip)
		}
	}
}

// RateLimit returns a middleware throttling each client IP.
func RateLimit(perSecond float64, burst int) fiber.Handler {
	limiter := newRateLimiter(perSecond, burst)
	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP(), time.Now()) {
			return detailJSON(c, fiber.StatusTooManyRequests, msgTooManyRequests)
		}
		return c.Next()
	}
}
