package pagedate

import (
	"context"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// ContentHash returns the cache key for one document's HTML: the hex-encoded
// xxHash of the content. A changed page gets a new hash and is re-extracted.
func ContentHash(html string) string {
	h := xxhash.Sum64String(html)
	var b [8]byte
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// Record pairs one document identifier with its extraction result, and
// optionally with a baseline extractor's answer for the same HTML.
type Record struct {
	URL      string         `json:"url"`
	Result   *Result        `json:"result"`
	Baseline *BaselineDates `json:"baseline,omitempty"`
}

// Validate returns an error if the record is incomplete.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Result == nil {
		return Errorf(EINVALID, "record result required")
	}
	return nil
}

// RecordStore caches extraction results keyed by document URL and content
// hash, so interrupted batch runs can resume without re-extracting unchanged
// documents.
type RecordStore interface {
	// FindRecord returns the cached record for the URL and content hash.
	// Returns ENOTFOUND if no matching record exists.
	FindRecord(ctx context.Context, url, contentHash string) (*Record, error)

	// SaveRecord stores a record, replacing any previous one for the URL.
	SaveRecord(ctx context.Context, rec *Record, contentHash string) error
}
