package pagedate

import "context"

// Target names the result field a fallback lookup is asked to fill.
type Target string

// Fallback targets.
const (
	TargetPublished Target = "published"
	TargetModified  Target = "modified"
)

// Fallback is the injected capability consulted when no extraction strategy
// yields a candidate for a target field. Implementations may be slow or
// remote; the caller enforces a timeout via the context. A nil candidate with
// a nil error is a legitimate "nothing found" answer.
//
// The result, if any, is treated as lowest trust: the pipeline stamps it
// MethodLLMFallback regardless of what the implementation reports.
type Fallback interface {
	ExtractDate(ctx context.Context, src Source, target Target) (*Candidate, error)
}

// FallbackFunc adapts a function to the Fallback interface.
type FallbackFunc func(ctx context.Context, src Source, target Target) (*Candidate, error)

// ExtractDate calls f.
func (f FallbackFunc) ExtractDate(ctx context.Context, src Source, target Target) (*Candidate, error) {
	return f(ctx, src, target)
}
