// Package goquery provides the raw date extractors. Each scanner is an
// independent strategy turning HTML into zero or more provenance-tagged raw
// date strings. Scanners never fail: malformed markup yields no candidates
// for that strategy only.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// maxRawLength bounds the text pulled from a matched element. Anything
// longer is not a date string.
const maxRawLength = 64

// parse builds a goquery document, tolerating malformed input. A nil return
// means the strategy contributes nothing.
func parse(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// position locates raw in the document, searching forward from `from` so
// repeated values keep document order. Falls back to `from` when the raw
// text does not literally appear (e.g. decoded entities).
func position(html, raw string, from int) int {
	if from < 0 || from > len(html) {
		from = 0
	}
	if i := strings.Index(html[from:], raw); i >= 0 {
		return from + i
	}
	if i := strings.Index(html, raw); i >= 0 {
		return i
	}
	return from
}

// elementRaw pulls the most date-like value from an element: a datetime or
// content attribute if present, the trimmed text otherwise. Empty or
// oversized values yield "".
func elementRaw(sel *goquery.Selection) string {
	if v, ok := sel.Attr("datetime"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if v, ok := sel.Attr("content"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" || len(text) > maxRawLength {
		return ""
	}
	return text
}

// DefaultScanners returns every extraction strategy in trust order. All are
// always run; the resolver decides which one wins.
func DefaultScanners() []pagedate.Scanner {
	return []pagedate.Scanner{
		NewJSONLDScanner(),
		NewMetaScanner(),
		NewTimeScanner(),
		NewSelectorScanner(),
		NewLinkScanner(),
		NewURLScanner(),
		NewPhraseScanner(),
		NewVisibleScanner(),
		NewGenericScanner(),
	}
}
