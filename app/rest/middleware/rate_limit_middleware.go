package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-IP request limits. Login attempts and trip access
// checks get tighter limits than the rest of the API because both are the
// guessing surfaces: passwords on one, share tokens on the other.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.RWMutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the middleware func.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Request().URL.Path

			var limit rate.Limit
			var burst int
			switch {
			case strings.Contains(path, "/auth/login"):
				limit = rate.Every(10 * time.Second)
				burst = 5
			case strings.HasPrefix(path, "/v1/trips/") && c.Request().Method == http.MethodGet:
				// Share-token guessing protection on the read path.
				limit = rate.Every(time.Second)
				burst = 10
			default:
				limit = rate.Every(time.Second)
				burst = 20
			}

			if !rl.allow(ip+"|"+bucketFor(path), limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error": "Rate limit exceeded",
					"code":  "RATE_LIMIT_EXCEEDED",
				})
			}

			return next(c)
		}
	}
}

// bucketFor separates the login and trip-read limit buckets from the rest
// so hammering one endpoint cannot exhaust another's budget.
func bucketFor(path string) string {
	switch {
	case strings.Contains(path, "/auth/login"):
		return "login"
	case strings.HasPrefix(path, "/v1/trips/"):
		return "trips"
	default:
		return "api"
	}
}

func (rl *RateLimiter) allow(key string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		rl.visitors[key] = &visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
