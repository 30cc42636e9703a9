package utils

import (
	"context"
	"fmt"
	"strings"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClientInterface is the contract for the upstream conversational model.
// The provider is consumed as an opaque service: one message list in, one
// assistant message out, a single attempt with no retries.
type ChatClientInterface interface {
	Chat(ctx context.Context, system string, messages []ChatMessage) (string, error)
	Close() error
}

// NewChatClient creates either an OpenAI or Gemini client based on config.
func NewChatClient(provider, apiKey, model string) (ChatClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
