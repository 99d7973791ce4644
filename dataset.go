package pagedate

// Page is one fetched document in a batch dataset. Text holds the raw HTML;
// pages whose fetch failed carry Success=false and are skipped by the batch
// runner.
type Page struct {
	URL     string `json:"url"`
	Text    string `json:"text"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Entry groups the pages fetched for one query in a batch dataset.
type Entry struct {
	Question string `json:"question"`
	Pages    []Page `json:"content_results"`
}
