package omnidocs

import "context"

// RateLimiter spaces page loads.
type RateLimiter interface {
	// Wait blocks until ref may be loaded. Returns an error if ctx ends
	// first.
	Wait(ctx context.Context, ref PageRef) error
}
