package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"personal-timeline/pkg/response"
)

// RateLimit enforces a per-client request budget keyed by client IP.
// Idle clients age out of the limiter table instead of accumulating.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.rateLimit.RequestsPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	capacity := m.rateLimit.ClientCapacity
	if capacity <= 0 {
		capacity = 1000
	}

	limiters := expirable.NewLRU[string, *rate.Limiter](capacity, nil, 5*time.Minute)
	var mu sync.Mutex

	perSec := rate.Limit(float64(perMin) / 60.0)
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return func(c *gin.Context) {
		key := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(perSec, burst)
			limiters.Add(key, limiter)
		}
		mu.Unlock()

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: client %s over budget", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
