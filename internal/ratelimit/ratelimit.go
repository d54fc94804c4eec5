package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// window counts events inside a sliding time span
type window struct {
	span   time.Duration
	limit  int
	events []time.Time
}

func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	kept := w.events[:0]
	for _, t := range w.events {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.events = kept
}

// full reports whether the window reached its limit. A limit <= 0 means unlimited.
func (w *window) full() bool {
	return w.limit > 0 && len(w.events) >= w.limit
}

func (w *window) remaining() int {
	if w.limit <= 0 {
		return -1
	}
	if r := w.limit - len(w.events); r > 0 {
		return r
	}
	return 0
}

// RateLimiter tracks and enforces request rate limits over minute, hour and day windows
type RateLimiter struct {
	enabled bool
	minute  window
	hour    window
	day     window
	now     func() time.Time
	mu      sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given limits
func NewRateLimiter(requestsPerMinute, requestsPerHour, requestsPerDay int, enabled bool) *RateLimiter {
	return &RateLimiter{
		enabled: enabled,
		minute:  window{span: time.Minute, limit: requestsPerMinute},
		hour:    window{span: time.Hour, limit: requestsPerHour},
		day:     window{span: 24 * time.Hour, limit: requestsPerDay},
		now:     time.Now,
	}
}

// AllowRequest checks if a request is allowed based on rate limits
// Returns true if allowed, false if rate limit exceeded
func (rl *RateLimiter) AllowRequest() bool {
	if !rl.enabled {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.prune(now)

	if rl.minute.full() || rl.hour.full() || rl.day.full() {
		return false
	}

	// Record the request
	rl.minute.events = append(rl.minute.events, now)
	rl.hour.events = append(rl.hour.events, now)
	rl.day.events = append(rl.day.events, now)

	return true
}

func (rl *RateLimiter) prune(now time.Time) {
	rl.minute.prune(now)
	rl.hour.prune(now)
	rl.day.prune(now)
}

// Stats contains rate limiter statistics. Remaining is -1 for unlimited windows.
type Stats struct {
	Enabled             bool `json:"enabled"`
	RequestsLastMinute  int  `json:"requests_last_minute"`
	RequestsLastHour    int  `json:"requests_last_hour"`
	RequestsLastDay     int  `json:"requests_last_day"`
	LimitPerMinute      int  `json:"limit_per_minute"`
	LimitPerHour        int  `json:"limit_per_hour"`
	LimitPerDay         int  `json:"limit_per_day"`
	RemainingThisMinute int  `json:"remaining_this_minute"`
	RemainingThisHour   int  `json:"remaining_this_hour"`
	RemainingThisDay    int  `json:"remaining_this_day"`
}

// GetStats returns current rate limiter statistics
func (rl *RateLimiter) GetStats() Stats {
	if !rl.enabled {
		return Stats{Enabled: false}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(rl.now())

	return Stats{
		Enabled:             true,
		RequestsLastMinute:  len(rl.minute.events),
		RequestsLastHour:    len(rl.hour.events),
		RequestsLastDay:     len(rl.day.events),
		LimitPerMinute:      rl.minute.limit,
		LimitPerHour:        rl.hour.limit,
		LimitPerDay:         rl.day.limit,
		RemainingThisMinute: rl.minute.remaining(),
		RemainingThisHour:   rl.hour.remaining(),
		RemainingThisDay:    rl.day.remaining(),
	}
}

// Reset clears all tracked requests
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.minute.events = nil
	rl.hour.events = nil
	rl.day.events = nil
}

// Middleware rejects requests over the limit with 429
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.AllowRequest() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"title":  "Too many requests",
				"detail": "rate limit exceeded, try again later",
				"status": http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
