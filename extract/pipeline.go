// Package extract provides the date extraction pipeline orchestration: it
// runs every scanner, normalizes every raw occurrence, pools the surviving
// candidates, resolves the published and modified dates, and assigns
// confidence labels.
package extract

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/frederickpi/pagedate"
)

// Ensure Pipeline implements pagedate.Extractor at compile time.
var _ pagedate.Extractor = (*Pipeline)(nil)

// Pipeline is the multi-strategy date extraction pipeline. All fields except
// Fallback are required. Each Extract call is a pure computation over its
// input; a single Pipeline is safe for concurrent use.
type Pipeline struct {
	Scanners   []pagedate.Scanner
	Normalizer pagedate.Normalizer
	Fallback   pagedate.Fallback
	Config     pagedate.Config
}

// Extract runs the full pipeline over one document. It never returns nil and
// never fails: undecodable input yields the all-absent result.
func (p *Pipeline) Extract(ctx context.Context, src pagedate.Source) *pagedate.Result {
	if strings.TrimSpace(src.HTML) == "" || !utf8.ValidString(src.HTML) {
		return pagedate.EmptyResult()
	}

	pl := &pool{}
	for _, scanner := range p.Scanners {
		for _, c := range scanSafely(scanner, src) {
			parsed, ambiguous, ok := p.Normalizer.Normalize(c.Raw, c.Method)
			if !ok {
				continue // normalization failure is not an error
			}
			c.Parsed = parsed
			c.Ambiguous = c.Ambiguous || ambiguous
			pl.add(c)
		}
	}

	published, pubOK := resolvePublished(pl)
	modified, modOK := resolveModified(pl)

	// The injected capability is consulted only for fields no strategy
	// could fill, and its answer is pooled like any other candidate.
	if p.Fallback != nil {
		if !pubOK {
			if c, ok := p.consultFallback(ctx, src, pagedate.TargetPublished); ok {
				published, pubOK = c, true
				pl.add(c)
			}
		}
		if !modOK {
			if c, ok := p.consultFallback(ctx, src, pagedate.TargetModified); ok {
				modified, modOK = c, true
				pl.add(c)
			}
		}
	}

	conflict := pubOK && modOK && modified.Parsed.Before(published.Parsed)

	result := pagedate.EmptyResult()
	if pubOK {
		result.PublishedDate = published.Parsed
		result.PublishedMethod = published.Method
		result.PublishedRaw = published.Raw
		result.PubConfidence = assess(published, pl, conflict)
	}
	if modOK {
		result.ModifiedDate = modified.Parsed
		result.ModifiedMethod = modified.Method
		result.ModifiedRaw = modified.Raw
		result.ModConfidence = assess(modified, pl, conflict)
	}
	result.DatesFound = pl.dates()
	if n := len(result.DatesFound); n > 0 {
		result.LastDateFound = result.DatesFound[n-1]
	}
	return result
}

// consultFallback calls the injected capability with an enforced timeout and
// fails open: a timeout, error or unusable answer yields no candidate. The
// answer is re-normalized and window-checked like any scanner output, and is
// always stamped lowest trust.
func (p *Pipeline) consultFallback(ctx context.Context, src pagedate.Source, target pagedate.Target) (pagedate.Candidate, bool) {
	timeout := p.Config.FallbackTimeout
	if timeout <= 0 {
		timeout = pagedate.DefaultFallbackTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	candidate, err := p.Fallback.ExtractDate(ctx, src, target)
	if err != nil || candidate == nil {
		return pagedate.Candidate{}, false
	}

	c := *candidate
	c.Method = pagedate.MethodLLMFallback
	if c.Parsed.IsZero() {
		parsed, ambiguous, ok := p.Normalizer.Normalize(c.Raw, c.Method)
		if !ok {
			return pagedate.Candidate{}, false
		}
		c.Parsed = parsed
		c.Ambiguous = c.Ambiguous || ambiguous
	} else {
		c.Parsed = time.Date(c.Parsed.Year(), c.Parsed.Month(), c.Parsed.Day(), 0, 0, 0, 0, time.UTC)
	}
	if !p.Config.InWindow(c.Parsed) {
		return pagedate.Candidate{}, false
	}
	return c, true
}

// scanSafely isolates a scanner failure to that strategy: a panicking
// scanner contributes zero candidates and the document continues.
func scanSafely(s pagedate.Scanner, src pagedate.Source) (out []pagedate.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	return s.Scan(src)
}
