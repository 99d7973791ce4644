package pagedate

import "context"

// Extractor runs the full date extraction pipeline over one document.
//
// Extraction never fails: unrecoverable input yields the all-absent result
// so a batch of many documents cannot be aborted by one bad document. The
// context bounds only the optional fallback capability; everything else is
// pure computation.
type Extractor interface {
	Extract(ctx context.Context, src Source) *Result
}
