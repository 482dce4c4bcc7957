package handler

import (
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders returns middleware that sets security response headers.
// frameOrigins lists the origins allowed in <iframe> (the map embed).
func SecurityHeaders(frameOrigins ...string) func(http.Handler) http.Handler {
	frameSrc := "'none'"
	if len(frameOrigins) > 0 {
		frameSrc = strings.Join(frameOrigins, " ")
	}
	csp := "default-src 'self'; script-src 'self'; style-src 'self'; img-src 'self' https: data:; " +
		"frame-src " + frameSrc + "; form-action 'self'; frame-ancestors 'none'"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("X-XSS-Protection", "0")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			h.Set("Content-Security-Policy", csp)
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
			next.ServeHTTP(w, r)
		})
	}
}

// Origin returns scheme://host for an absolute URL, or "" when raw is
// relative or unparsable.
func Origin(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// RateLimiter provides IP-based rate limiting using a sliding window.
type RateLimiter struct {
	maxPerMinute      int
	trustedProxyCount int
	now               func() time.Time
	done              chan struct{}
	closeOnce         sync.Once
	mu                sync.Mutex
	clients           map[string]*clientWindow
}

type clientWindow struct {
	timestamps []time.Time
}

// NewRateLimiter creates a rate limiter with the given requests-per-minute limit.
// Assumes a single trusted reverse proxy by default.
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:      maxPerMinute,
		trustedProxyCount: 1,
		now:               time.Now,
		done:              make(chan struct{}),
		clients:           make(map[string]*clientWindow),
	}
	go rl.cleanupLoop()
	return rl
}

// Close stops the background cleanup.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

func (rl *RateLimiter) prune() {
	windowStart := rl.now().Add(-time.Minute)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, cw := range rl.clients {
		cw.trim(windowStart)
		if len(cw.timestamps) == 0 {
			delete(rl.clients, ip)
		}
	}
}

// trim drops timestamps at or before windowStart, reusing the backing array.
func (cw *clientWindow) trim(windowStart time.Time) {
	valid := cw.timestamps[:0]
	for _, ts := range cw.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	cw.timestamps = valid
}

// Middleware returns an http.Handler that enforces rate limits.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		now := rl.now()

		rl.mu.Lock()
		cw, ok := rl.clients[ip]
		if !ok {
			cw = &clientWindow{}
			rl.clients[ip] = cw
		}
		cw.trim(now.Add(-time.Minute))

		if len(cw.timestamps) >= rl.maxPerMinute {
			retryAfter := cw.timestamps[0].Add(time.Minute).Sub(now)
			rl.mu.Unlock()

			slog.WarnContext(r.Context(), "rate limit exceeded", "ip", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}

		cw.timestamps = append(cw.timestamps, now)
		rl.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
