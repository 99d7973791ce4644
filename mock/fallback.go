package mock

import (
	"context"

	"github.com/frederickpi/pagedate"
)

var _ pagedate.Fallback = (*Fallback)(nil)

// Fallback is a mock implementation of pagedate.Fallback.
type Fallback struct {
	ExtractDateFn func(ctx context.Context, src pagedate.Source, target pagedate.Target) (*pagedate.Candidate, error)
}

func (f *Fallback) ExtractDate(ctx context.Context, src pagedate.Source, target pagedate.Target) (*pagedate.Candidate, error) {
	return f.ExtractDateFn(ctx, src, target)
}
