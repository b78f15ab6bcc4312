package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httperr "github.com/ventus-lab/ventus/internal/core/errors"
	"github.com/ventus-lab/ventus/internal/metrics"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "ventus.request_id"

// RequestID propagates X-Request-ID, generating a uuid when the client sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Metrics records request count and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		duration := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordHTTPRequest(c.Request.Method, path, status, duration)

		slog.Debug("[Server] Request served",
			"request_id", RequestIDFrom(c),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration", duration,
		)
	}
}

// RateLimiter keeps one token bucket per caller key.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn func(*gin.Context) string

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter allows rps requests per second with the given burst per key.
// keyFn identifies the caller; an empty key falls back to the client IP.
func NewRateLimiter(rps float64, burst int, keyFn func(*gin.Context) string) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		keyFn:    keyFn,
		limiters: make(map[string]*rate.Limiter),
	}
}

// getLimiter gets or creates the limiter for key
func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters[key]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.rps, l.burst)
	l.limiters[key] = limiter
	return limiter
}

// Handler rejects requests over the limit with 429.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var key string
		if l.keyFn != nil {
			key = l.keyFn(c)
		}
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !l.getLimiter(key).Allow() {
			metrics.RecordRateLimitedRequest(c.FullPath())
			slog.Warn("[Server] Rate limit exceeded", "key", key, "request_id", RequestIDFrom(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.ErrorResponse{
				ErrorType: httperr.HttpRateLimitedError,
				Message:   "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
