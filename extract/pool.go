package extract

import (
	"sort"
	"time"

	"github.com/frederickpi/pagedate"
)

// pool is the full set of normalized candidates for one document, the most
// permissive stage of the pipeline: everything that parsed and landed inside
// the plausibility window is kept, regardless of method.
type pool struct {
	candidates []pagedate.Candidate
}

// add keeps a candidate only if it carries a parsed timestamp.
func (p *pool) add(c pagedate.Candidate) {
	if !c.Normalized() {
		return
	}
	p.candidates = append(p.candidates, c)
}

// byMethod returns the candidates produced by one method.
func (p *pool) byMethod(m pagedate.Method) []pagedate.Candidate {
	var out []pagedate.Candidate
	for _, c := range p.candidates {
		if c.Method == m {
			out = append(out, c)
		}
	}
	return out
}

// dates returns the chronologically ordered distinct set of all parsed
// timestamps in the pool. This is the basis for last_date_found, which
// downstream consumers treat as more trustworthy than the resolved fields.
func (p *pool) dates() []time.Time {
	seen := make(map[time.Time]bool, len(p.candidates))
	var out []time.Time
	for _, c := range p.candidates {
		if seen[c.Parsed] {
			continue
		}
		seen[c.Parsed] = true
		out = append(out, c.Parsed)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// agreement reports whether a method other than c's produced the same date.
// Fallback methods don't count: the generic scanner re-reads text the
// primary scanners already saw, so its echo is not independent evidence.
func (p *pool) agreement(c pagedate.Candidate) bool {
	for _, other := range p.candidates {
		if other.Method == c.Method || other.Method.IsFallback() {
			continue
		}
		if other.Parsed.Equal(c.Parsed) {
			return true
		}
	}
	return false
}

// disagreement reports whether c's own method produced a different date.
func (p *pool) disagreement(c pagedate.Candidate) bool {
	for _, other := range p.candidates {
		if other.Method == c.Method && !other.Parsed.Equal(c.Parsed) {
			return true
		}
	}
	return false
}
