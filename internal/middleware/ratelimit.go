package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const idleLimiterTTL = 10 * time.Minute

// RateLimiter holds one token bucket per client IP.
type RateLimiter struct {
	limiters        sync.Map
	rate            rate.Limit
	burst           int
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type limiterEntry struct {
	limiter    *rate.Limiter
	mu         sync.Mutex
	lastAccess time.Time
}

func (e *limiterEntry) touch(now time.Time) {
	e.mu.Lock()
	e.lastAccess = now
	e.mu.Unlock()
}

func (e *limiterEntry) idleSince(now time.Time) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return now.Sub(e.lastAccess)
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given burst.
// A non-positive rate disables limiting. Call Close to stop the cleanup goroutine.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	rl := &RateLimiter{
		rate:            rate.Limit(requestsPerSecond),
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}
	if requestsPerSecond <= 0 {
		rl.rate = rate.Inf
	}

	go rl.cleanup()

	return rl
}

// Close stops the background cleanup.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok && entry.idleSince(now) > idleLimiterTTL {
			rl.limiters.Delete(key)
		}
		return true
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.touch(now)
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rl.rate, rl.burst),
		lastAccess: now,
	}
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

func clientIdentifier(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:unknown"
}

func (rl *RateLimiter) limitHeader() string {
	if rl.rate == rate.Inf {
		return "unlimited"
	}
	return strconv.FormatFloat(float64(rl.rate), 'f', -1, 64)
}

// Middleware returns a Gin middleware handler for rate limiting
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		clientID := clientIdentifier(c)
		limiter := rl.getLimiter(clientID)
		reset := strconv.FormatInt(time.Now().Add(time.Second).Unix(), 10)

		if !limiter.Allow() {
			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("component", string(logger.ComponentAPI)),
				zap.String("client_id", clientID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))

			c.Header("X-RateLimit-Limit", rl.limitHeader())
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", rl.limitHeader())
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}
