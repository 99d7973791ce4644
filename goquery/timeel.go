package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure TimeScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*TimeScanner)(nil)

// TimeScanner extracts dates from HTML5 <time> elements, preferring the
// machine-readable datetime attribute over the element text.
type TimeScanner struct{}

// NewTimeScanner creates a new TimeScanner.
func NewTimeScanner() *TimeScanner {
	return &TimeScanner{}
}

// Method returns the time-element strategy tag.
func (s *TimeScanner) Method() pagedate.Method {
	return pagedate.MethodTimeElement
}

// Scan returns one candidate per <time> element, in document order.
func (s *TimeScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate
	cursor := 0

	doc.Find("time").Each(func(_ int, sel *goquery.Selection) {
		raw := elementRaw(sel)
		if raw == "" {
			return
		}
		pos := position(src.HTML, raw, cursor)
		cursor = pos + len(raw)
		out = append(out, pagedate.Candidate{
			Raw:      raw,
			Method:   pagedate.MethodTimeElement,
			Position: pos,
		})
	})

	return out
}
