package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/frederickpi/pagedate"
)

// Ensure LoggingFallback implements pagedate.Fallback.
var _ pagedate.Fallback = (*LoggingFallback)(nil)

// LoggingFallback wraps a Fallback with call logging. Fallback calls are slow
// and metered, so every one is worth a log line.
type LoggingFallback struct {
	next   pagedate.Fallback
	logger *slog.Logger
}

// NewLoggingFallback creates a new LoggingFallback.
func NewLoggingFallback(next pagedate.Fallback, logger *slog.Logger) *LoggingFallback {
	return &LoggingFallback{next: next, logger: logger}
}

// ExtractDate delegates to the wrapped fallback and logs the outcome.
func (f *LoggingFallback) ExtractDate(ctx context.Context, src pagedate.Source, target pagedate.Target) (*pagedate.Candidate, error) {
	begin := time.Now()
	candidate, err := f.next.ExtractDate(ctx, src, target)

	attrs := []any{
		"url", src.URL,
		"target", string(target),
		"duration", time.Since(begin),
	}
	switch {
	case err != nil:
		f.logger.Warn("fallback lookup failed", append(attrs, "error", err)...)
	case candidate == nil:
		f.logger.Debug("fallback found nothing", attrs...)
	default:
		f.logger.Info("fallback lookup", append(attrs, "raw", candidate.Raw)...)
	}
	return candidate, err
}
