package extract

import "github.com/frederickpi/pagedate"

// resolvePublished selects the published date from the pool: the
// highest-trust method with any candidate wins, and within that method the
// earliest document position wins (the first-declared date is assumed
// canonical).
func resolvePublished(p *pool) (pagedate.Candidate, bool) {
	return resolve(p, func(c, best pagedate.Candidate) bool {
		return c.Position < best.Position
	})
}

// resolveModified selects the modified date: same method priority, but
// within a method the latest document position wins (later mentions are
// assumed more current).
func resolveModified(p *pool) (pagedate.Candidate, bool) {
	return resolve(p, func(c, best pagedate.Candidate) bool {
		return c.Position > best.Position
	})
}

// resolve walks methods in descending trust order and applies the position
// tie-break within the first method that has candidates. Positions are only
// compared within a single method, so each strategy's offset space stays
// self-consistent.
func resolve(p *pool, better func(c, best pagedate.Candidate) bool) (pagedate.Candidate, bool) {
	for _, method := range pagedate.Methods {
		candidates := p.byMethod(method)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if better(c, best) {
				best = c
			}
		}
		return best, true
	}
	return pagedate.Candidate{}, false
}
