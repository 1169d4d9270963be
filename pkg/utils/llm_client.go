package utils

import (
	"fmt"
	"strings"

	"context"
)

// ChatTurn is one prior turn replayed to the model. Role is "user" or
// "model"; the chat protocol requires strict alternation starting with user.
type ChatTurn struct {
	Role    string
	Content string
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// GenerationClientInterface abstracts the upstream generative-language
// provider. One call per operation, no streaming, no retries; any retry
// policy belongs to the caller.
type GenerationClientInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateChat(ctx context.Context, history []ChatTurn, message string) (string, error)
	Close() error
}

// NewGenerationClient creates either an OpenAI or Gemini client based on
// config.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAIGenerationClient(apiKey, model)
	case ProviderGemini:
		return NewGeminiGenerationClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
