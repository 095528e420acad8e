package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksAfterThreshold(t *testing.T) {
	limiter := newAttemptLimiter()
	key := attemptKey("10.0.0.1", "ana@example.com")
	now := time.Now()

	for i := 0; i < maxLoginFailures; i++ {
		if limiter.tooManyRecent(key, now) {
			t.Fatalf("blocked after only %d failures", i)
		}
		limiter.addFailure(key, now)
	}

	if !limiter.tooManyRecent(key, now) {
		t.Fatal("expected the limiter to block after the threshold")
	}
}

func TestAttemptLimiterForgetsOldFailures(t *testing.T) {
	limiter := newAttemptLimiter()
	key := attemptKey("10.0.0.1", "ana@example.com")
	past := time.Now().Add(-loginFailureWindow - time.Minute)

	for i := 0; i < maxLoginFailures; i++ {
		limiter.addFailure(key, past)
	}

	if limiter.tooManyRecent(key, time.Now()) {
		t.Fatal("failures outside the window must not count")
	}
}

func TestAttemptLimiterResetClearsKey(t *testing.T) {
	limiter := newAttemptLimiter()
	key := attemptKey("10.0.0.1", "ana@example.com")
	now := time.Now()

	for i := 0; i < maxLoginFailures; i++ {
		limiter.addFailure(key, now)
	}
	limiter.reset(key)

	if limiter.tooManyRecent(key, now) {
		t.Fatal("a successful login must clear the failure history")
	}
}

func TestAttemptKeyNormalizesEmail(t *testing.T) {
	if attemptKey("10.0.0.1", " Ana@Example.COM ") != attemptKey("10.0.0.1", "ana@example.com") {
		t.Fatal("expected case and whitespace insensitive keys")
	}
	if attemptKey("10.0.0.1", "ana@example.com") == attemptKey("10.0.0.2", "ana@example.com") {
		t.Fatal("different clients must not share a key")
	}
}
