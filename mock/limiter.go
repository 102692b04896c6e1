package mock

import (
	"context"

	"github.com/fwojciec/omnidocs"
)

var _ omnidocs.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of omnidocs.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context, ref omnidocs.PageRef) error
}

func (l *RateLimiter) Wait(ctx context.Context, ref omnidocs.PageRef) error {
	return l.WaitFn(ctx, ref)
}
