package pagedate

// Method identifies the extraction strategy that produced a date candidate.
// The set is closed: every method carries an intrinsic trust weight used by
// the resolver to prefer more reliable signals.
type Method string

// Extraction methods, roughly in descending order of reliability.
const (
	// MethodStructuredData matches date fields inside machine-readable
	// JSON-LD blocks (schema.org datePublished/dateModified and friends).
	MethodStructuredData Method = "structured-data"

	// MethodStructuredMeta matches meta tags conventionally used for
	// publish/update timestamps (article:published_time, dateModified, ...).
	MethodStructuredMeta Method = "structured-meta"

	// MethodTimeElement matches HTML5 <time> elements.
	MethodTimeElement Method = "time-element"

	// MethodCSSSelector matches common date-bearing selectors
	// ([itemprop=datePublished], .published, .updated, [class*=date], ...).
	MethodCSSSelector Method = "css-selector"

	// MethodLinkRelation matches dates embedded in canonical/alternate
	// link relation targets.
	MethodLinkRelation Method = "link-relation"

	// MethodURLPattern matches year/month/day shapes in the document URL.
	MethodURLPattern Method = "url-pattern"

	// MethodUpdatePhrase matches a "last updated"/"last modified" marker
	// followed by a date-shaped token in the visible text.
	MethodUpdatePhrase Method = "update-phrase"

	// MethodVisibleText matches date-shaped tokens in the rendered text.
	MethodVisibleText Method = "visible-text"

	// MethodGenericFallback matches any remaining date-shaped token
	// anywhere in the raw document.
	MethodGenericFallback Method = "generic-fallback"

	// MethodLLMFallback marks a candidate produced by the injected
	// fallback capability. Treated as lowest trust.
	MethodLLMFallback Method = "llm-fallback"

	// MethodNotFound is the sentinel for a field with no chosen date.
	MethodNotFound Method = "not-found"
)

// Methods lists every extraction method, highest trust first. The resolver
// iterates this slice, so its order is the priority order.
var Methods = []Method{
	MethodStructuredData,
	MethodStructuredMeta,
	MethodTimeElement,
	MethodCSSSelector,
	MethodLinkRelation,
	MethodURLPattern,
	MethodUpdatePhrase,
	MethodVisibleText,
	MethodGenericFallback,
	MethodLLMFallback,
}

// methodWeights is the exhaustive trust table. A missing entry would make
// TrustWeight return zero, below every real method.
var methodWeights = map[Method]int{
	MethodStructuredData:  100,
	MethodStructuredMeta:  90,
	MethodTimeElement:     70,
	MethodCSSSelector:     60,
	MethodLinkRelation:    55,
	MethodURLPattern:      50,
	MethodUpdatePhrase:    45,
	MethodVisibleText:     40,
	MethodGenericFallback: 20,
	MethodLLMFallback:     10,
	MethodNotFound:        0,
}

// TrustWeight returns the intrinsic trust weight of the method.
func (m Method) TrustWeight() int {
	return methodWeights[m]
}

// Trust tier boundaries for confidence assignment.
const (
	highTrustWeight = 90
	lowTrustWeight  = 40
)

// Tier buckets methods into the three trust tiers used by the confidence
// table.
type Tier int

// Trust tiers.
const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

// Tier returns the trust tier of the method.
func (m Method) Tier() Tier {
	w := m.TrustWeight()
	switch {
	case w >= highTrustWeight:
		return TierHigh
	case w >= lowTrustWeight:
		return TierMid
	default:
		return TierLow
	}
}

// IsFallback reports whether the method is one of the last-resort strategies.
func (m Method) IsFallback() bool {
	return m == MethodGenericFallback || m == MethodLLMFallback
}
