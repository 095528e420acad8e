package api

import (
	"strings"
	"sync"
	"time"
)

const (
	maxLoginFailures   = 10
	loginFailureWindow = 15 * time.Minute
)

// attemptLimiter tracks recent login failures per client/e-mail pair so
// repeated bad credentials back off before hitting bcrypt again.
type attemptLimiter struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter() *attemptLimiter {
	return &attemptLimiter{failures: make(map[string][]time.Time)}
}

func attemptKey(clientIP string, email string) string {
	return clientIP + "|" + strings.ToLower(strings.TrimSpace(email))
}

func (limiter *attemptLimiter) tooManyRecent(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	recent := pruneOld(limiter.failures[key], now)
	if len(recent) == 0 {
		delete(limiter.failures, key)
	} else {
		limiter.failures[key] = recent
	}
	return len(recent) >= maxLoginFailures
}

func (limiter *attemptLimiter) addFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	limiter.failures[key] = append(pruneOld(limiter.failures[key], now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

func pruneOld(attempts []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-loginFailureWindow)
	recent := attempts[:0]
	for _, attempt := range attempts {
		if attempt.After(cutoff) {
			recent = append(recent, attempt)
		}
	}
	return recent
}
