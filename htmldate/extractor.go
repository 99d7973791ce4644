// Package htmldate implements the comparison baseline using the go-htmldate
// extractor. Its answers are recorded next to the pipeline's so accuracy can
// be compared over a corpus; they never feed back into resolution.
package htmldate

import (
	"context"
	"strings"
	"time"

	"github.com/frederickpi/pagedate"
	"github.com/markusmobius/go-htmldate"
)

// Ensure Extractor implements pagedate.Baseline at compile time.
var _ pagedate.Baseline = (*Extractor)(nil)

// Extractor wraps go-htmldate behind the pagedate.Baseline interface.
type Extractor struct {
	cfg pagedate.Config
}

// NewExtractor creates a baseline extractor sharing the pipeline's
// plausibility window so the two systems reject the same outliers.
func NewExtractor(cfg pagedate.Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// FindDates runs go-htmldate twice over the document, once preferring the
// original publication date and once preferring the latest update. Absent
// answers come back as zero timestamps, not errors.
func (e *Extractor) FindDates(ctx context.Context, src pagedate.Source) (*pagedate.BaselineDates, error) {
	if strings.TrimSpace(src.HTML) == "" {
		return &pagedate.BaselineDates{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, pagedate.Errorf(pagedate.EUNAVAILABLE, "baseline canceled: %v", err)
	}

	published, err := e.find(src, true)
	if err != nil {
		return nil, err
	}
	modified, err := e.find(src, false)
	if err != nil {
		return nil, err
	}
	return &pagedate.BaselineDates{Published: published, Modified: modified}, nil
}

func (e *Extractor) find(src pagedate.Source, original bool) (time.Time, error) {
	min, max := e.cfg.Window()
	res, err := htmldate.FromReader(strings.NewReader(src.HTML), htmldate.Options{
		URL:             src.URL,
		UseOriginalDate: original,
		MinDate:         min,
		MaxDate:         max,
	})
	if err != nil {
		return time.Time{}, pagedate.Errorf(pagedate.EINTERNAL, "baseline extraction failed: %v", err)
	}
	if res.IsZero() {
		return time.Time{}, nil
	}
	d := res.DateTime
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}
