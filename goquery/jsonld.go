package goquery

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure JSONLDScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*JSONLDScanner)(nil)

// JSON-LD keys that carry dates, matched at any nesting depth.
var jsonldDateKeys = map[string]bool{
	"datePublished": true,
	"dateModified":  true,
	"dateCreated":   true,
	"uploadDate":    true,
}

// JSONLDScanner extracts date fields from schema.org JSON-LD blocks
// embedded in <script type="application/ld+json"> elements. Date keys are
// matched by name regardless of nesting, so @graph wrappers and nested
// entities are covered without modeling the vocabulary.
type JSONLDScanner struct{}

// NewJSONLDScanner creates a new JSONLDScanner.
func NewJSONLDScanner() *JSONLDScanner {
	return &JSONLDScanner{}
}

// Method returns the structured-data strategy tag.
func (s *JSONLDScanner) Method() pagedate.Method {
	return pagedate.MethodStructuredData
}

// Scan returns one candidate per date-keyed string value across all JSON-LD
// blocks, in document order.
func (s *JSONLDScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		// Some publishers wrap the payload in CDATA comment guards.
		text = strings.TrimPrefix(text, "//<![CDATA[")
		text = strings.TrimSuffix(text, "//]]>")
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}

		var payload any
		if err := json.Unmarshal([]byte(text), &payload); err != nil {
			return // one broken block never fails the strategy
		}

		scriptPos := position(src.HTML, text, 0)
		walkJSONLD(payload, func(raw string) {
			out = append(out, pagedate.Candidate{
				Raw:      raw,
				Method:   pagedate.MethodStructuredData,
				Position: position(src.HTML, raw, scriptPos),
			})
		})
	})

	return out
}

// walkJSONLD visits every date-keyed string value in the decoded payload.
// Object keys are visited in sorted order so extraction is deterministic.
func walkJSONLD(node any, emit func(raw string)) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			val := v[key]
			if s, ok := val.(string); ok && jsonldDateKeys[key] && s != "" {
				emit(s)
				continue
			}
			walkJSONLD(val, emit)
		}
	case []any:
		for _, item := range v {
			walkJSONLD(item, emit)
		}
	}
}
