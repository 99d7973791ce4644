package goquery

import (
	"net/url"

	"github.com/frederickpi/pagedate"
)

// Ensure URLScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*URLScanner)(nil)

// URLScanner extracts year/month/day shapes from the document's own URL
// path, the pattern most blog and news permalinks follow.
type URLScanner struct{}

// NewURLScanner creates a new URLScanner.
func NewURLScanner() *URLScanner {
	return &URLScanner{}
}

// Method returns the url-pattern strategy tag.
func (s *URLScanner) Method() pagedate.Method {
	return pagedate.MethodURLPattern
}

// Scan returns at most one candidate, from the source URL. Position is zero:
// the URL precedes the document.
func (s *URLScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	if src.URL == "" {
		return nil
	}
	path := src.URL
	if u, err := url.Parse(src.URL); err == nil && u.Path != "" {
		path = u.Path
	}
	raw, ok := findURLDate(path)
	if !ok {
		return nil
	}
	return []pagedate.Candidate{{
		Raw:    raw,
		Method: pagedate.MethodURLPattern,
	}}
}
