package pagedate

import "time"

// Candidate is a date-shaped occurrence found by one extraction strategy.
// Scanners produce candidates with Raw, Method and Position set; the
// normalizer fills Parsed. A candidate whose Parsed is still zero never
// reaches the pool.
type Candidate struct {
	// Raw is the matched text exactly as it appeared in the document.
	Raw string

	// Method is the strategy that produced the candidate.
	Method Method

	// Parsed is the normalized timestamp at date granularity (UTC).
	// Zero until normalization succeeds.
	Parsed time.Time

	// Position is the character offset of the match, used for tie-breaks.
	// Scanners that cannot determine a position report the match index.
	Position int

	// Ambiguous is set when the day/month order of a numeric date was
	// guessed from the configured locale preference. Caps confidence at low.
	Ambiguous bool
}

// Normalized reports whether the candidate carries a parsed timestamp.
func (c Candidate) Normalized() bool {
	return !c.Parsed.IsZero()
}

// Source is the input to an extraction call: the HTML document and,
// when known, the URL it was fetched from. HTML bytes are supplied by the
// caller; the core performs no I/O.
type Source struct {
	URL  string
	HTML string
}

// Scanner is a single raw extraction strategy. Implementations must be pure
// functions of the source: no I/O, no shared state, and no panics on
// malformed input. On any internal failure a scanner returns nil.
type Scanner interface {
	// Method returns the strategy tag attached to produced candidates.
	Method() Method

	// Scan returns zero or more raw candidates found in the source.
	// Parsed is left zero; normalization happens downstream.
	Scan(src Source) []Candidate
}

// Normalizer parses a raw date string into an absolute timestamp at date
// granularity. It must never panic: unparsable input and dates outside the
// plausibility window report ok=false.
type Normalizer interface {
	// Normalize returns the parsed timestamp, whether the numeric
	// day/month order had to be guessed, and whether parsing succeeded.
	Normalize(raw string, method Method) (parsed time.Time, ambiguous bool, ok bool)
}
