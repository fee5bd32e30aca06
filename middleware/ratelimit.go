package middleware

import (
	"sync"
	"time"

	"car-rental/errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

const visitorIdle = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *ipRateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.evict(now)

	v, exists := rl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evict drops visitors idle for longer than visitorIdle. Caller holds mu.
func (rl *ipRateLimiter) evict(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdle {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimit limits requests per client IP. rps is the sustained rate, burst
// the bucket size.
func RateLimit(rps float64, burst int) fiber.Handler {
	limiter := newIPRateLimiter(rps, burst)

	return func(c *fiber.Ctx) error {
		if !limiter.getLimiter(c.IP(), time.Now()).Allow() {
			return errors.RaiseTooManyRequestsError(c, "slow down")
		}
		return c.Next()
	}
}
