package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/nearbiz/internal/httperr"
)

// limiterIdleTTL is how long an IP may stay silent before its bucket is
// dropped. A bucket refills completely within a minute, so a dropped entry
// is indistinguishable from a fresh one.
const limiterIdleTTL = 3 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipLimiters holds one token bucket per client IP.
type ipLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*ipLimiter
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiters(limit rate.Limit, burst int) *ipLimiters {
	return &ipLimiters{
		limiters: make(map[string]*ipLimiter),
		limit:    limit,
		burst:    burst,
		ttl:      limiterIdleTTL,
		now:      time.Now,
	}
}

func (s *ipLimiters) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweep(now)
	}

	e, ok := s.limiters[ip]
	if !ok {
		e = &ipLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[ip] = e
	}
	e.lastSeen = now
	return e.limiter
}

// sweep drops every entry idle for at least ttl. Callers hold mu.
func (s *ipLimiters) sweep(now time.Time) {
	for ip, e := range s.limiters {
		if now.Sub(e.lastSeen) >= s.ttl {
			delete(s.limiters, ip)
		}
	}
	s.lastSweep = now
}

// RateLimitMiddleware allows perMinute requests per client IP, with bursts
// of the same size. A non-positive perMinute disables limiting.
func RateLimitMiddleware(perMinute int, log *zap.Logger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	store := newIPLimiters(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.get(ip).Allow() {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.TooManyRequests(c, "rate_limited", "Demasiadas solicitudes, intenta más tarde.")
			return
		}
		c.Next()
	}
}
