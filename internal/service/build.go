package service

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// buildChatParams assembles the single-message completion request. The
// temperature is pinned to zero: classification output should be stable
// across identical submissions.
func buildChatParams(modelID, renderedPrompt string) *openai.ChatCompletionNewParams {
	return &openai.ChatCompletionNewParams{
		Model: shared.ChatModel(modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(renderedPrompt),
		},
		Temperature: openai.Float(0),
	}
}
