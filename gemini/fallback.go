// Package gemini implements the last-resort date lookup using Google Gemini.
// It is consulted only when every extraction strategy came up empty, and its
// answers are always treated as lowest trust.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/frederickpi/pagedate"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptTokens bounds the converted page content sent to the model.
const maxPromptTokens = 100000

// Ensure Fallback implements pagedate.Fallback at compile time.
var _ pagedate.Fallback = (*Fallback)(nil)

// Fallback implements pagedate.Fallback using Google Gemini. Page HTML is
// converted to Markdown before prompting, which strips markup the primary
// strategies already exhausted and keeps the visible text where dates live.
type Fallback struct {
	client  *genai.Client
	conv    pagedate.Converter
	counter pagedate.TokenCounter
}

// NewFallback creates a new Fallback. The token counter is optional; without
// one, content is bounded by a character heuristic instead.
func NewFallback(client *genai.Client, conv pagedate.Converter, counter pagedate.TokenCounter) *Fallback {
	return &Fallback{client: client, conv: conv, counter: counter}
}

// ExtractDate asks the model for the target date of one document. A page
// that states no such date yields a nil candidate and a nil error.
func (f *Fallback) ExtractDate(ctx context.Context, src pagedate.Source, target pagedate.Target) (*pagedate.Candidate, error) {
	if strings.TrimSpace(src.HTML) == "" {
		return nil, pagedate.Errorf(pagedate.EINVALID, "document HTML required")
	}
	if target != pagedate.TargetPublished && target != pagedate.TargetModified {
		return nil, pagedate.Errorf(pagedate.EINVALID, "unknown target %q", target)
	}

	content, err := f.conv.Convert(src.HTML)
	if err != nil {
		return nil, err
	}
	content, err = f.bound(ctx, content)
	if err != nil {
		return nil, err
	}

	prompt := BuildUserPrompt(content, src.URL, target)
	config := BuildConfig()

	result, err := f.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, pagedate.Errorf(pagedate.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, pagedate.Errorf(pagedate.EINTERNAL, "gemini returned nil result")
	}

	raw, err := ParseAnswer(result.Text())
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	return &pagedate.Candidate{Raw: raw, Method: pagedate.MethodLLMFallback}, nil
}

// bound trims content to the model's context budget. With a token counter the
// cut is proportional to the measured overshoot; without one it falls back to
// a conservative characters-per-token estimate.
func (f *Fallback) bound(ctx context.Context, content string) (string, error) {
	if f.counter == nil {
		const maxChars = maxPromptTokens * 3
		if len(content) > maxChars {
			return content[:maxChars], nil
		}
		return content, nil
	}

	tokens, err := f.counter.CountTokens(ctx, content)
	if err != nil {
		return "", err
	}
	if tokens <= maxPromptTokens {
		return content, nil
	}
	keep := len(content) * maxPromptTokens / tokens
	return content[:keep], nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Temperature zero: date extraction wants the most literal reading.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract dates from web page content. Answer with a single JSON object and nothing else. Only report a date the page itself states; never guess.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// targetQuestions phrases the lookup for each result field.
var targetQuestions = map[pagedate.Target]string{
	pagedate.TargetPublished: "the date this page was first published",
	pagedate.TargetModified:  "the date this page was last updated or modified",
}

// BuildUserPrompt builds the user prompt containing the page and the question.
func BuildUserPrompt(content, url string, target pagedate.Target) string {
	var sb strings.Builder
	sb.WriteString("<page>\n")
	if url != "" {
		fmt.Fprintf(&sb, "<url>%s</url>\n", url)
	}
	fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	sb.WriteString("</page>\n\n")
	fmt.Fprintf(&sb, "Find %s.\n", targetQuestions[target])
	sb.WriteString(`Respond with {"date": "YYYY-MM-DD"} or, if the page does not state one, {"date": null}.`)
	return sb.String()
}

// ParseAnswer extracts the date string from a model response. An explicit
// null answer returns the empty string with no error.
func ParseAnswer(text string) (string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var answer struct {
		Date *string `json:"date"`
	}
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return "", pagedate.Errorf(pagedate.EINTERNAL, "unparseable model answer: %v", err)
	}
	if answer.Date == nil {
		return "", nil
	}
	raw := strings.TrimSpace(*answer.Date)
	if raw == "" || strings.EqualFold(raw, "null") || strings.EqualFold(raw, "none") {
		return "", nil
	}
	return raw, nil
}
