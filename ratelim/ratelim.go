package ratelim

import (
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"

	"quickcart/utils"
)

// RateLimiter enforces a per-IP request budget across a time window.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	window   time.Duration
}

// New allows max requests per window from each client address.
func New(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
		window:   window,
	}
}

// Get or create a rate limiter for an IP
func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[ip] = limiter

	// Evict idle IPs after two windows
	go func() {
		time.Sleep(2 * rl.window)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit wraps a handler with the per-IP budget check. Rejections carry a
// retryAfter estimate in seconds.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		limiter := rl.getLimiter(clientIP(r))

		res := limiter.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			utils.RespondWithJSON(w, http.StatusTooManyRequests, utils.Envelope{
				Success:    false,
				Error:      "Too many requests",
				Message:    "Rate limit exceeded. Please try again later.",
				RetryAfter: int(math.Ceil(delay.Seconds())),
			})
			return
		}

		next(w, r, ps)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
