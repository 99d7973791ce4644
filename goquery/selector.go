package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure SelectorScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*SelectorScanner)(nil)

// Common selectors for date-bearing elements. Publish-flavored selectors
// come first so their candidates sit earlier in position ties.
var dateSelectors = []string{
	`[itemprop="datePublished"]`,
	`[itemprop="dateCreated"]`,
	`[itemprop="dateModified"]`,
	".published",
	".post-date",
	".article-date",
	".entry-date",
	".updated",
	".modified",
	".last-modified",
	".date",
	`[class*="publish"]`,
	`[class*="update"]`,
	`[class*="modified"]`,
	`[class*="date"]`,
}

// SelectorScanner extracts dates from elements matching the common CSS
// selectors publishers use for visible timestamps.
type SelectorScanner struct{}

// NewSelectorScanner creates a new SelectorScanner.
func NewSelectorScanner() *SelectorScanner {
	return &SelectorScanner{}
}

// Method returns the css-selector strategy tag.
func (s *SelectorScanner) Method() pagedate.Method {
	return pagedate.MethodCSSSelector
}

// Scan returns one candidate per matched element. Elements matched by more
// than one selector contribute once.
func (s *SelectorScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate
	seen := make(map[int]bool)

	for _, selector := range dateSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			raw := elementRaw(sel)
			if raw == "" {
				return
			}
			pos := position(src.HTML, raw, 0)
			if seen[pos] {
				return
			}
			seen[pos] = true
			out = append(out, pagedate.Candidate{
				Raw:      raw,
				Method:   pagedate.MethodCSSSelector,
				Position: pos,
			})
		})
	}

	return out
}
