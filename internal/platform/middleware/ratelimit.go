// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/constants"
	"github.com/taibuivan/postgrado/internal/platform/respond"
)

var errRateLimited = apperr.New(http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Rate limit exceeded")

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// buckets holds one token bucket per client IP.
type buckets struct {
	mu      sync.Mutex
	byIP    map[string]*bucket
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

func (b *buckets) take(ip string, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.byIP[ip]
	if !ok {
		entry = &bucket{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.byIP[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

func (b *buckets) sweep(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ip, entry := range b.byIP {
		if now.Sub(entry.lastSeen) > b.idleTTL {
			delete(b.byIP, ip)
		}
	}
}

// RateLimit answers 429 once an IP exhausts its bucket of burst tokens
// refilled at rps. Idle buckets are swept until ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	limits := &buckets{
		byIP:    make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: constants.RateLimitClientTTL,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				limits.sweep(now)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limits.take(RealIP(request), time.Now()) {
				writer.Header().Set("Retry-After", "1")
				respond.Error(writer, request, errRateLimited)
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
