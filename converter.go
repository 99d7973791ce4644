package pagedate

// Converter converts HTML to Markdown. The fallback capability uses it to
// shrink documents before prompting a language model.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
