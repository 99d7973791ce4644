// Package slog provides logging decorators for pagedate interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/frederickpi/pagedate"
)

// Ensure LoggingExtractor implements pagedate.Extractor.
var _ pagedate.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-document result logging.
type LoggingExtractor struct {
	next   pagedate.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagedate.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, src pagedate.Source) *pagedate.Result {
	begin := time.Now()
	result := e.next.Extract(ctx, src)
	e.logger.Info("date extraction",
		"url", src.URL,
		"published", formatDate(result.PublishedDate),
		"published_method", string(result.PublishedMethod),
		"pub_confidence", string(result.PubConfidence),
		"modified", formatDate(result.ModifiedDate),
		"modified_method", string(result.ModifiedMethod),
		"mod_confidence", string(result.ModConfidence),
		"dates_found", len(result.DatesFound),
		"duration", time.Since(begin),
	)
	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "(none)"
	}
	return t.Format(pagedate.DateFormat)
}
