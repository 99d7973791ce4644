package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure MetaScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*MetaScanner)(nil)

// Meta tag names conventionally used for publish timestamps. Matched against
// the property, name and itemprop attributes.
var publishedMetaNames = map[string]bool{
	"article:published_time":    true,
	"og:article:published_time": true,
	"datepublished":             true,
	"publishdate":               true,
	"dc.date.issued":            true,
	"date":                      true,
	"publication_date":          true,
	"article.published":         true,
	"sailthru.date":             true,
	"article.created":           true,
	"date.created":              true,
	"pubdate":                   true,
}

// Meta tag names conventionally used for update timestamps.
var modifiedMetaNames = map[string]bool{
	"article:modified_time":    true,
	"og:article:modified_time": true,
	"og:updated_time":          true,
	"datemodified":             true,
	"last-modified":            true,
	"lastmod":                  true,
	"updated_time":             true,
	"article.updated":          true,
	"date.updated":             true,
}

// MetaScanner extracts dates from meta tags conventionally used for
// publish/update timestamps (Open Graph, Schema.org itemprop, Dublin Core).
type MetaScanner struct{}

// NewMetaScanner creates a new MetaScanner.
func NewMetaScanner() *MetaScanner {
	return &MetaScanner{}
}

// Method returns the structured-meta strategy tag.
func (s *MetaScanner) Method() pagedate.Method {
	return pagedate.MethodStructuredMeta
}

// Scan returns one candidate per date-bearing meta tag, in document order.
func (s *MetaScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate
	cursor := 0

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		if !isDateMetaName(sel) {
			return
		}
		content, ok := sel.Attr("content")
		if !ok {
			content, _ = sel.Attr("value")
		}
		if content == "" {
			return
		}
		pos := position(src.HTML, content, cursor)
		cursor = pos + len(content)
		out = append(out, pagedate.Candidate{
			Raw:      content,
			Method:   pagedate.MethodStructuredMeta,
			Position: pos,
		})
	})

	return out
}

// isDateMetaName checks the property, name and itemprop attributes against
// the published and modified vocabularies.
func isDateMetaName(sel *goquery.Selection) bool {
	for _, attr := range []string{"property", "name", "itemprop"} {
		if v, ok := sel.Attr(attr); ok {
			v = lower(v)
			if publishedMetaNames[v] || modifiedMetaNames[v] {
				return true
			}
		}
	}
	return false
}

// lower is an ASCII-only lowercase, sufficient for attribute names.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
