package mock

import (
	"context"

	"github.com/frederickpi/pagedate"
)

var _ pagedate.Baseline = (*Baseline)(nil)

// Baseline is a mock implementation of pagedate.Baseline.
type Baseline struct {
	FindDatesFn func(ctx context.Context, src pagedate.Source) (*pagedate.BaselineDates, error)
}

func (b *Baseline) FindDates(ctx context.Context, src pagedate.Source) (*pagedate.BaselineDates, error) {
	return b.FindDatesFn(ctx, src)
}
