package router

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client's limiter is kept after its last request
const clientIdleTTL = 10 * time.Minute

// Limiter implements per-client rate limiting. Idle clients are evicted.
type Limiter struct {
	limiters     *gocache.Cache
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	return newLimiter(requestsPerSecond, burst, clientIdleTTL)
}

func newLimiter(requestsPerSecond float64, burst int, idle time.Duration) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     gocache.New(idle, idle),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
	}
}

// Allow checks if a request from client is allowed without waiting
func (l *Limiter) Allow(client string) bool {
	return l.getLimiter(client).Allow()
}

// getLimiter returns the rate limiter for a client, creating it on first use.
// Every lookup pushes the client's expiry back by the idle TTL.
func (l *Limiter) getLimiter(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	var limiter *rate.Limiter
	if v, found := l.limiters.Get(client); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	}
	l.limiters.SetDefault(client, limiter)
	return limiter
}

// Clients returns the number of tracked clients, including expired ones not yet cleaned up
func (l *Limiter) Clients() int {
	return l.limiters.ItemCount()
}

// Middleware rejects requests under prefix with 429 once a client exceeds its budget
func (l *Limiter) Middleware(prefix string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) && !l.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller by remote host
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
