package services

import (
	"context"
	"errors"
	"fmt"

	"ChatbotApi/pkg/config"
)

// ChatMessage is one role-tagged turn sent to a generation provider.
// Role is "user" or "model".
type ChatMessage struct {
	Role string
	Text string
}

// Provider generates a reply for an ordered list of chat turns. The last
// turn is always the user prompt needing a completion.
type Provider interface {
	Generate(ctx context.Context, turns []ChatMessage) (string, error)
}

// ErrProvider wraps every upstream generation failure: transport errors,
// non-2xx statuses and responses without usable candidate text. There is
// exactly one attempt per exchange; callers never retry.
var ErrProvider = errors.New("generation provider error")

func providerErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrProvider, fmt.Sprintf(format, args...))
}

// NewProvider builds the configured provider backend. The choice is made
// once at startup; there is no runtime fallback between backends.
func NewProvider(ctx context.Context) (Provider, error) {
	switch config.Provider {
	case "gemini":
		return NewGeminiProvider(), nil
	case "openai":
		return NewOpenAIProvider(), nil
	case "vertex":
		return NewVertexProvider(ctx)
	case "local":
		return NewLocalProvider(), nil
	default:
		return nil, fmt.Errorf("unknown PROVIDER %q", config.Provider)
	}
}
