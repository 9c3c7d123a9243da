package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/focuslog-backend/pkg/ctxutil"
)

// idleBucketTTL is how long an untouched client bucket is kept.
const idleBucketTTL = 10 * time.Minute

type timeSource interface {
	Now() time.Time
}

// RateLimiter throttles API calls per client with a token bucket that
// refills continuously. Clients are keyed by the address ClientIP put on the
// context, or the connection's remote host when it is absent.
type RateLimiter struct {
	clock timeSource

	mu      sync.Mutex
	clients map[string]*bucket

	done chan struct{}
	once sync.Once
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Stop must be called on shutdown.
func NewRateLimiter(cleanupInterval time.Duration, clk timeSource) *RateLimiter {
	rl := &RateLimiter{
		clock:   clk,
		clients: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go rl.sweepLoop(cleanupInterval)
	return rl
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.done) })
}

// Limit allows perMinute requests per client, with bursts up to perMinute.
// Rejected calls get 429 and a Retry-After in whole seconds.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	capacity := float64(perMinute)
	perSecond := capacity / 60

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ctxutil.ClientIPFromCtx(r.Context())
			if key == "" {
				key = remoteHost(r.RemoteAddr)
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(perMinute))
			if wait, ok := rl.take(key, capacity, perSecond); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for key. When none is left it reports how long
// until the next one is available.
func (rl *RateLimiter) take(key string, capacity, perSecond float64) (time.Duration, bool) {
	now := rl.clock.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[key]
	if !ok {
		b = &bucket{tokens: capacity, lastSeen: now}
		rl.clients[key] = b
	}

	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.lastSeen).Seconds()*perSecond)
	b.lastSeen = now

	if b.tokens < 1 {
		missing := (1 - b.tokens) / perSecond
		return time.Duration(missing * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.clock.Now().Add(-idleBucketTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.clients {
		if b.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}
