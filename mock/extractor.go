package mock

import (
	"context"

	"github.com/frederickpi/pagedate"
)

var _ pagedate.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagedate.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, src pagedate.Source) *pagedate.Result
}

func (e *Extractor) Extract(ctx context.Context, src pagedate.Source) *pagedate.Result {
	return e.ExtractFn(ctx, src)
}
