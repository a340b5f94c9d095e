package validation

import (
	"sort"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoCompletionTests(t *T) {
	t.Run("has the documented fields", func(t *T) {
		payload := fixtures.NewCompletionResponse()
		assert.Equal(t, "chatcmpl-123", payload.ID)
		assert.Equal(t, "chat.completion", payload.Object)
		assert.Equal(t, "gpt-3.5-turbo", payload.Model)
		require.Len(t, payload.Choices, 1)
		assert.Equal(t, "assistant", payload.Choices[0].Message.Role)
		assert.Equal(t, "stop", payload.Choices[0].FinishReason)
		assert.Equal(t, 70, payload.Usage.TotalTokens)
	})

	t.Run("wire form has the documented shape", func(t *T) {
		v := fixtures.CompletionJSON(t)
		assert.Equal(t, "chatcmpl-123", v.GetByKey("id").StringValue())
		assert.Equal(t, 1677652288, v.GetByKey("created").IntValue())
		assert.Equal(t, 1, v.GetByKey("choices").Count())

		choice := v.GetByKey("choices").GetByIndex(0)
		assert.Equal(t, "This is a test response from the LLM.",
			choice.GetByKey("message").GetByKey("content").StringValue())

		usage := v.GetByKey("usage")
		assert.Equal(t, 50, usage.GetByKey("prompt_tokens").IntValue())
		assert.Equal(t, 20, usage.GetByKey("completion_tokens").IntValue())
	})
}

func DoSearchResultTests(t *T) {
	t.Run("returns three results", func(t *T) {
		results := fixtures.NewSearchResults()
		require.Len(t, results, 3)
		assert.Equal(t, "First Result", results[0].Title)
		assert.Equal(t, "https://example.com/3", results[2].URL)
	})

	t.Run("is ordered by descending score", func(t *T) {
		results := fixtures.NewSearchResults()
		assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		}))
		assert.Equal(t, 0.95, results[0].Score)
	})
}
