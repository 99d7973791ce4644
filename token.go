package pagedate

import "context"

// TokenCounter measures prompt size in model tokens. The fallback extractor
// uses it to keep converted page content inside the model's context budget.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
