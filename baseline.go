package pagedate

import (
	"context"
	"time"
)

// BaselineDates holds a third-party extractor's answer for one document.
// Zero timestamps mean the baseline found nothing for that field.
type BaselineDates struct {
	Published time.Time
	Modified  time.Time
}

// Baseline runs an independent date extractor over the same HTML so its
// output can be recorded alongside this package's for accuracy comparison.
// It never interacts with the core pipeline.
type Baseline interface {
	FindDates(ctx context.Context, src Source) (*BaselineDates, error)
}
