package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/omnidocs"
	"golang.org/x/time/rate"
)

var _ omnidocs.RateLimiter = (*HostLimiter)(nil)

// HostLimiter spaces page loads with one token bucket per host, so a slow
// host never holds back pages served by another.
type HostLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// HostLimiterOption configures a HostLimiter.
type HostLimiterOption func(*HostLimiter)

// WithBurst lets n loads of a host start back to back before spacing
// applies. Values below 1 are ignored.
func WithBurst(n int) HostLimiterOption {
	return func(l *HostLimiter) {
		if n >= 1 {
			l.burst = n
		}
	}
}

// NewHostLimiter allows rps page loads per second per host, one at a time
// unless WithBurst says otherwise. A non-positive rps never waits.
func NewHostLimiter(rps float64, opts ...HostLimiterOption) *HostLimiter {
	l := &HostLimiter{
		limit: rate.Limit(rps),
		burst: 1,
		hosts: make(map[string]*rate.Limiter),
	}
	if rps <= 0 {
		l.limit = rate.Inf
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the bucket of ref's host has a token. It returns
// ECANCELED when ctx ends first.
func (l *HostLimiter) Wait(ctx context.Context, ref omnidocs.PageRef) error {
	if err := l.bucket(ref.Host()).Wait(ctx); err != nil {
		return omnidocs.WrapError(omnidocs.ECANCELED, err, "waiting to load %s", ref)
	}
	return nil
}

func (l *HostLimiter) bucket(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.hosts[host]
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.hosts[host] = b
	}
	return b
}
