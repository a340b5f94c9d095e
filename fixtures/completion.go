package fixtures

import (
	"encoding/json"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionChoice struct {
	Index        int               `json:"index"`
	Message      CompletionMessage `json:"message"`
	FinishReason string            `json:"finish_reason"`
}

type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is a canned model-completion payload in the common wire
// shape, for tests that consume such responses.
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   CompletionUsage    `json:"usage"`
}

// NewCompletionResponse returns the standard canned completion payload.
func NewCompletionResponse() CompletionResponse {
	return CompletionResponse{
		ID:      "chatcmpl-123",
		Object:  "chat.completion",
		Created: 1677652288,
		Model:   "gpt-3.5-turbo",
		Choices: []CompletionChoice{
			{
				Index: 0,
				Message: CompletionMessage{
					Role:    "assistant",
					Content: "This is a test response from the LLM.",
				},
				FinishReason: "stop",
			},
		},
		Usage: CompletionUsage{
			PromptTokens:     50,
			CompletionTokens: 20,
			TotalTokens:      70,
		},
	}
}

// CompletionJSON returns the canned completion payload as a parsed JSON value,
// which is convenient for shape assertions on the wire form.
func CompletionJSON(t TestingT) ldvalue.Value {
	data, err := json.Marshal(NewCompletionResponse())
	require.NoError(t, err)
	return ldvalue.Parse(data)
}
