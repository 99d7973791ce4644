package extract

import "github.com/frederickpi/pagedate"

// assess derives the confidence label for one resolved date. The mapping is
// a fixed table, not learned:
//
//   - base level follows the chosen method's trust tier
//   - an independent method agreeing on the same date upgrades one level
//   - a same-method disagreement downgrades one level
//   - an ordering conflict (modified before published) downgrades one level
//   - fallback-only answers and ambiguous locale guesses never rise above low
func assess(chosen pagedate.Candidate, p *pool, orderingConflict bool) pagedate.Confidence {
	var conf pagedate.Confidence
	switch chosen.Method.Tier() {
	case pagedate.TierHigh:
		conf = pagedate.ConfidenceHigh
	case pagedate.TierMid:
		conf = pagedate.ConfidenceMedium
	default:
		conf = pagedate.ConfidenceLow
	}

	if p.agreement(chosen) {
		conf = conf.Upgrade()
	}
	if p.disagreement(chosen) {
		conf = conf.Downgrade()
	}
	if orderingConflict {
		conf = conf.Downgrade()
	}
	if chosen.Method.IsFallback() || chosen.Ambiguous {
		conf = pagedate.ConfidenceLow
	}
	return conf
}
