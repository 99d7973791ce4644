package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure LinkScanner implements pagedate.Scanner at compile time.
var _ pagedate.Scanner = (*LinkScanner)(nil)

// Link relations whose targets commonly embed publication dates.
var dateLinkRels = map[string]bool{
	"canonical": true,
	"alternate": true,
	"shortlink": true,
	"amphtml":   true,
}

// LinkScanner extracts year/month/day shapes from the targets of canonical
// and alternate link relations. A date in the canonical URL is a stronger
// signal than one in arbitrary body text.
type LinkScanner struct{}

// NewLinkScanner creates a new LinkScanner.
func NewLinkScanner() *LinkScanner {
	return &LinkScanner{}
}

// Method returns the link-relation strategy tag.
func (s *LinkScanner) Method() pagedate.Method {
	return pagedate.MethodLinkRelation
}

// Scan returns one candidate per date-bearing link target, in document order.
func (s *LinkScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate
	cursor := 0

	doc.Find("link[rel][href]").Each(func(_ int, sel *goquery.Selection) {
		rel, _ := sel.Attr("rel")
		if !dateLinkRels[strings.ToLower(strings.TrimSpace(rel))] {
			return
		}
		href, _ := sel.Attr("href")
		raw, ok := findURLDate(linkPath(href))
		if !ok {
			return
		}
		pos := position(src.HTML, href, cursor)
		cursor = pos + len(href)
		out = append(out, pagedate.Candidate{
			Raw:      raw,
			Method:   pagedate.MethodLinkRelation,
			Position: pos,
		})
	})

	return out
}

// linkPath returns the path portion of href, or the raw string when it does
// not parse as a URL.
func linkPath(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	return u.Path
}
