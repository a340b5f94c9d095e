package fixtures

// SearchResult is one entry in the canned search-result list.
type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
}

// NewSearchResults returns three canned results in descending relevance order.
func NewSearchResults() []SearchResult {
	return []SearchResult{
		{
			Title:   "First Result",
			URL:     "https://example.com/1",
			Snippet: "This is the first search result",
			Score:   0.95,
		},
		{
			Title:   "Second Result",
			URL:     "https://example.com/2",
			Snippet: "This is the second search result",
			Score:   0.87,
		},
		{
			Title:   "Third Result",
			URL:     "https://example.com/3",
			Snippet: "This is the third search result",
			Score:   0.73,
		},
	}
}
