// Package batch runs the extraction pipeline over whole datasets.
// It coordinates concurrent per-document extraction, result caching,
// optional baseline comparison, and progress reporting.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/frederickpi/pagedate"
	"golang.org/x/sync/errgroup"
)

// Runner processes every successfully fetched page in a dataset through the
// extractor. A per-document failure never aborts the run.
type Runner struct {
	Extractor   pagedate.Extractor
	Baseline    pagedate.Baseline    // optional: record baseline answers
	Store       pagedate.RecordStore // optional: cache for resumable runs
	Concurrency int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Cached    bool
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// batchResult holds the outcome of processing a single page.
type batchResult struct {
	position int
	record   *pagedate.Record
	cached   bool
}

// Run extracts dates for every page in the dataset and returns one record per
// distinct URL, in first-seen order. The progress callback, if provided,
// receives events as the run proceeds.
func (r *Runner) Run(ctx context.Context, entries []*pagedate.Entry, progress ProgressFunc) ([]*pagedate.Record, error) {
	pages := collectPages(entries)
	total := len(pages)

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				rec, cached := r.processPage(gctx, page)
				resultCh <- batchResult{position: i, record: rec, cached: cached}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	records := make([]*pagedate.Record, total)
	var completed atomic.Int64
	for result := range resultCh {
		completed.Add(1)
		records[result.position] = result.record
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.record.URL,
				Cached:    result.cached,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return records, ctx.Err()
}

// processPage resolves one page, preferring the cache when the content is
// unchanged.
func (r *Runner) processPage(ctx context.Context, page pagedate.Page) (*pagedate.Record, bool) {
	hash := pagedate.ContentHash(page.Text)

	if r.Store != nil {
		if rec, err := r.Store.FindRecord(ctx, page.URL, hash); err == nil {
			return rec, true
		}
	}

	rec := &pagedate.Record{
		URL:    page.URL,
		Result: r.Extractor.Extract(ctx, pagedate.Source{URL: page.URL, HTML: page.Text}),
	}

	if r.Baseline != nil {
		if dates, err := r.Baseline.FindDates(ctx, pagedate.Source{URL: page.URL, HTML: page.Text}); err == nil {
			rec.Baseline = dates
		}
	}

	if r.Store != nil {
		_ = r.Store.SaveRecord(ctx, rec, hash)
	}
	return rec, false
}

// collectPages flattens the dataset into distinct fetchable pages, first
// occurrence winning. Failed fetches and empty documents are skipped.
func collectPages(entries []*pagedate.Entry) []pagedate.Page {
	seen := make(map[string]bool)
	var pages []pagedate.Page
	for _, entry := range entries {
		for _, page := range entry.Pages {
			if !page.Success || page.Text == "" || page.URL == "" || seen[page.URL] {
				continue
			}
			seen[page.URL] = true
			pages = append(pages, page)
		}
	}
	return pages
}
