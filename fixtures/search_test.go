package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResultsShape(t *testing.T) {
	results := NewSearchResults()

	require.Len(t, results, 3)
	assert.Equal(t, "First Result", results[0].Title)
	assert.Equal(t, "https://example.com/1", results[0].URL)
	assert.Equal(t, "This is the first search result", results[0].Snippet)
	assert.Equal(t, 0.95, results[0].Score)
	assert.Equal(t, 0.87, results[1].Score)
	assert.Equal(t, 0.73, results[2].Score)
}

func TestSearchResultsDescendingScore(t *testing.T) {
	results := NewSearchResults()
	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i-1].Score, results[i].Score)
	}
}
