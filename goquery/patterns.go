package goquery

import "regexp"

// The shared library of date-shaped regular expressions. Ordering matters:
// the timestamped ISO form must win over the bare ISO date at the same
// offset, so patterns are tried in declaration order and overlapping later
// matches are discarded.
var datePatterns = []*regexp.Regexp{
	// ISO 8601 with time, e.g. 2020-05-01T12:00:00Z
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:Z|[+-]\d{2}:?\d{2})?`),
	// ISO 8601 calendar date, e.g. 2020-05-01
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
	// US form, e.g. June 3, 2021 or Jun. 3 2021
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}`),
	// European form, e.g. 3 June 2021
	regexp.MustCompile(`(?i)\d{1,2}(?:st|nd|rd|th)?\.?\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?,?\s+\d{4}`),
	// Numeric slash/dash forms, e.g. 05/01/2020, 1-5-2019, 2020/05/01
	regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{4}`),
	regexp.MustCompile(`\d{4}/\d{1,2}/\d{1,2}`),
}

// dateMatch is one pattern hit with its character offset in the scanned text.
type dateMatch struct {
	raw string
	pos int
}

// findDates runs the pattern library over text and returns non-overlapping
// matches in document order.
func findDates(text string) []dateMatch {
	var matches []dateMatch
	claimed := make([][2]int, 0, 8)

	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if overlaps(claimed, loc[0], loc[1]) {
				continue
			}
			claimed = append(claimed, [2]int{loc[0], loc[1]})
			matches = append(matches, dateMatch{raw: text[loc[0]:loc[1]], pos: loc[0]})
		}
	}

	sortMatches(matches)
	return matches
}

func overlaps(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && end > c[0] {
			return true
		}
	}
	return false
}

// sortMatches orders matches by position. Insertion sort: match counts are
// tiny and the slice is nearly sorted already.
func sortMatches(matches []dateMatch) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].pos < matches[j-1].pos; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

// urlDate matches year/month/day shapes embedded in URL paths, permitting
// both slash and dash separators.
var urlDate = regexp.MustCompile(`(?:^|[/\-_])((?:19|20)\d{2})[/\-]((?:0?[1-9])|1[0-2])[/\-]((?:0?[1-9])|[12]\d|3[01])(?:[/\-_.]|$)`)

// findURLDate extracts a year/month/day shape from a URL path. The returned
// raw uses the slash form understood by the normalizer.
func findURLDate(path string) (string, bool) {
	m := urlDate.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1] + "/" + m[2] + "/" + m[3], true
}
