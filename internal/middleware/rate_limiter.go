package middleware

import (
	"net/http"
	"sync"
	"time"

	"charty-dashboard-backend/internal/logger"

	"github.com/gin-gonic/gin"
	goCache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds one limiter per client IP. A limiter idle for
// longer than idle has refilled its bucket, so it is dropped.
type rateLimiterStore struct {
	limiters *goCache.Cache
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

func newRateLimiterStore(limit rate.Limit, burst int, idle time.Duration) *rateLimiterStore {
	return &rateLimiterStore{
		limiters: goCache.New(idle, idle),
		limit:    limit,
		burst:    burst,
		idle:     idle,
	}
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	var limiter *rate.Limiter
	if v, ok := s.limiters.Get(ip); ok {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(s.limit, s.burst)
	}
	// re-set on every hit so expiry tracks last use
	s.limiters.Set(ip, limiter, s.idle)
	return limiter
}

// LoginRateLimit allows perMinute login attempts per client IP, all of which
// may arrive at once.
func LoginRateLimit(perMinute int, log *logger.Logger) gin.HandlerFunc {
	store := newRateLimiterStore(rate.Every(time.Minute/time.Duration(perMinute)), perMinute, 2*time.Minute)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			log.Warnw("login rate limit exceeded", "ip", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts. Try again later."})
			return
		}
		c.Next()
	}
}
