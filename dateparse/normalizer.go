// Package dateparse provides the date normalizer, built on
// github.com/araddon/dateparse. It turns heterogeneous raw date strings into
// comparable timestamps at date granularity, resolving day/month ambiguity
// from a configured locale preference and rejecting dates outside the
// plausibility window.
package dateparse

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/frederickpi/pagedate"
)

// Ensure Normalizer implements pagedate.Normalizer at compile time.
var _ pagedate.Normalizer = (*Normalizer)(nil)

// Normalizer parses raw date strings into absolute calendar timestamps.
type Normalizer struct {
	cfg pagedate.Config
}

// NewNormalizer creates a Normalizer with the given config.
func NewNormalizer(cfg pagedate.Config) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// yearOnly matches bare four-digit years, which are rejected rather than
// guessed to day granularity.
var yearOnly = regexp.MustCompile(`^\d{4}$`)

// yearMonth matches YYYY-MM, an unambiguous year-month form normalized to
// the first of the month.
var yearMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// hasDigit is a cheap pre-filter: nothing date-shaped lacks a digit.
var hasDigit = regexp.MustCompile(`\d`)

// explicitLayouts are tried before the general parser. They cover the shapes
// produced by the URL and link-relation scanners plus the common machine
// formats, none of which are locale-ambiguous.
var explicitLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
}

// Normalize parses raw into a timestamp at date granularity (UTC).
// ok is false for unparsable input, bare years, and dates outside the
// plausibility window. ambiguous is true when the numeric day/month order
// was guessed from the configured locale preference.
func (n *Normalizer) Normalize(raw string, method pagedate.Method) (time.Time, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !hasDigit.MatchString(raw) {
		return time.Time{}, false, false
	}
	if yearOnly.MatchString(raw) {
		return time.Time{}, false, false
	}
	if yearMonth.MatchString(raw) {
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			return time.Time{}, false, false
		}
		return n.accept(t, false)
	}

	for _, layout := range explicitLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return n.accept(t, false)
		}
	}

	t, ambiguous, ok := n.parseFlexible(raw)
	if !ok {
		return time.Time{}, false, false
	}
	return n.accept(t, ambiguous)
}

// parseFlexible runs the general parser. Strict parsing is tried first; when
// it fails only because the numeric day/month order is ambiguous, the
// permissive parser decides using the locale preference and the result is
// flagged.
func (n *Normalizer) parseFlexible(raw string) (t time.Time, ambiguous, ok bool) {
	// The upstream parser can panic on pathological input; a scanner match
	// must never abort the document.
	defer func() {
		if r := recover(); r != nil {
			t, ambiguous, ok = time.Time{}, false, false
		}
	}()

	prefer := dateparse.PreferMonthFirst(!n.cfg.DayFirst)

	if strict, err := dateparse.ParseStrict(raw, prefer); err == nil {
		return strict, false, true
	}

	loose, err := dateparse.ParseAny(raw, prefer)
	if err != nil {
		return time.Time{}, false, false
	}
	return loose, true, true
}

// accept truncates to date granularity and applies the plausibility window.
func (n *Normalizer) accept(t time.Time, ambiguous bool) (time.Time, bool, bool) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if !n.cfg.InWindow(day) {
		return time.Time{}, false, false
	}
	return day, ambiguous, true
}
