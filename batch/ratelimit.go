package batch

import (
	"context"

	"github.com/frederickpi/pagedate"
	"golang.org/x/time/rate"
)

var _ pagedate.Fallback = (*RateLimitedFallback)(nil)

// RateLimitedFallback wraps a Fallback with a shared token bucket so
// concurrent workers stay inside the model API quota.
type RateLimitedFallback struct {
	fallback pagedate.Fallback
	limiter  *rate.Limiter
}

// NewRateLimitedFallback creates a rate limited wrapper allowing rps calls
// per second with a burst of 1.
func NewRateLimitedFallback(fallback pagedate.Fallback, rps float64) *RateLimitedFallback {
	return &RateLimitedFallback{
		fallback: fallback,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// ExtractDate blocks until the rate limit allows a call, then delegates.
func (f *RateLimitedFallback) ExtractDate(ctx context.Context, src pagedate.Source, target pagedate.Target) (*pagedate.Candidate, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return f.fallback.ExtractDate(ctx, src, target)
}
