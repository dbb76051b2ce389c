package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterReusesLimiterPerKey(t *testing.T) {
	ast := assert.New(t)

	rl := NewRateLimiter()
	first := rl.GetLimiter("auth|10.0.0.1", rate.Every(time.Minute/5), 5)
	second := rl.GetLimiter("auth|10.0.0.1", rate.Every(time.Minute/5), 5)
	ast.Same(first, second, "repeat requests share one bucket")

	other := rl.GetLimiter("auth|10.0.0.2", rate.Every(time.Minute/5), 5)
	ast.NotSame(first, other)
}

func TestRateLimiterCleanupExpiresIdleEntries(t *testing.T) {
	ast := assert.New(t)

	rl := NewRateLimiter()
	rl.GetLimiter("stale", rate.Every(time.Second), 20)
	rl.GetLimiter("fresh", rate.Every(time.Second), 20)

	rl.mutex.Lock()
	rl.lastSeen["stale"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	ast.NotContains(rl.limiters, "stale")
	ast.NotContains(rl.lastSeen, "stale")
	ast.Contains(rl.limiters, "fresh")
}

func TestRateLimiterGetRefreshesLastSeen(t *testing.T) {
	ast := assert.New(t)

	rl := NewRateLimiter()
	rl.GetLimiter("client", rate.Every(time.Second), 20)

	rl.mutex.Lock()
	rl.lastSeen["client"] = time.Now().Add(-2 * time.Hour)
	rl.mutex.Unlock()

	rl.GetLimiter("client", rate.Every(time.Second), 20)
	rl.Cleanup()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	ast.Contains(rl.limiters, "client", "an active client survives the sweep")
}
