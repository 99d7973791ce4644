package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/frederickpi/pagedate"
)

// Ensure the text scanners implement pagedate.Scanner at compile time.
var (
	_ pagedate.Scanner = (*VisibleScanner)(nil)
	_ pagedate.Scanner = (*PhraseScanner)(nil)
	_ pagedate.Scanner = (*GenericScanner)(nil)
)

// renderedText returns the document text a browser would paint: script,
// style and noscript subtrees are dropped before the text is taken.
func renderedText(doc *goquery.Document) string {
	doc.Find("script,style,noscript").Remove()
	return doc.Text()
}

// VisibleScanner matches the date pattern library against the rendered text
// of the document. Each match keeps its character offset in the rendered
// text, so positions are comparable within this strategy.
type VisibleScanner struct{}

// NewVisibleScanner creates a new VisibleScanner.
func NewVisibleScanner() *VisibleScanner {
	return &VisibleScanner{}
}

// Method returns the visible-text strategy tag.
func (s *VisibleScanner) Method() pagedate.Method {
	return pagedate.MethodVisibleText
}

// Scan returns one candidate per date-shaped token in the rendered text.
func (s *VisibleScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}

	var out []pagedate.Candidate
	for _, m := range findDates(renderedText(doc)) {
		out = append(out, pagedate.Candidate{
			Raw:      m.raw,
			Method:   pagedate.MethodVisibleText,
			Position: m.pos,
		})
	}
	return out
}

// updateMarker finds "last updated"/"modified on" style phrases in visible
// text. A date token shortly after the marker is a strong modification
// signal even on pages without structured markup.
var updateMarker = regexp.MustCompile(`(?i)\b(?:last\s+(?:updated|modified|revised)|updated\s+(?:on|at)?|modified\s+on|revised\s+on)\b[:\s]*`)

// phraseWindow is how far past the marker a date token may start.
const phraseWindow = 48

// PhraseScanner implements the "last updated" phrase heuristic: a
// text-proximity search for an update marker followed by a date-shaped token.
type PhraseScanner struct{}

// NewPhraseScanner creates a new PhraseScanner.
func NewPhraseScanner() *PhraseScanner {
	return &PhraseScanner{}
}

// Method returns the update-phrase strategy tag.
func (s *PhraseScanner) Method() pagedate.Method {
	return pagedate.MethodUpdatePhrase
}

// Scan returns one candidate per update marker with a nearby date token.
func (s *PhraseScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	doc := parse(src.HTML)
	if doc == nil {
		return nil
	}
	text := renderedText(doc)

	var out []pagedate.Candidate
	for _, loc := range updateMarker.FindAllStringIndex(text, -1) {
		tail := text[loc[1]:]
		if len(tail) > phraseWindow+maxRawLength {
			tail = tail[:phraseWindow+maxRawLength]
		}
		matches := findDates(tail)
		if len(matches) == 0 || matches[0].pos > phraseWindow {
			continue
		}
		out = append(out, pagedate.Candidate{
			Raw:      matches[0].raw,
			Method:   pagedate.MethodUpdatePhrase,
			Position: loc[1] + matches[0].pos,
		})
	}
	return out
}

// GenericScanner matches the date pattern library against the raw document,
// catching dates hidden in attributes, comments and scripts that no other
// strategy sees. Lowest trust: the resolver only reaches it when every other
// strategy came up empty.
type GenericScanner struct{}

// NewGenericScanner creates a new GenericScanner.
func NewGenericScanner() *GenericScanner {
	return &GenericScanner{}
}

// Method returns the generic-fallback strategy tag.
func (s *GenericScanner) Method() pagedate.Method {
	return pagedate.MethodGenericFallback
}

// Scan returns one candidate per date-shaped token anywhere in the raw HTML.
func (s *GenericScanner) Scan(src pagedate.Source) []pagedate.Candidate {
	var out []pagedate.Candidate
	for _, m := range findDates(src.HTML) {
		out = append(out, pagedate.Candidate{
			Raw:      m.raw,
			Method:   pagedate.MethodGenericFallback,
			Position: m.pos,
		})
	}
	return out
}
