package llm

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// Model adapts an OpenAI-compatible client to the agent's
// ConversationalModel contract.
type Model struct {
	client *openai.Client
	model  string
}

func NewModel(client *openai.Client, model string) *Model {
	return &Model{client: client, model: model}
}

func (m *Model) Respond(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     m.model,
		Messages:  messages,
		MaxTokens: 500,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
