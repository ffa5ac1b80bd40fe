package services

import (
	"context"
	"fmt"
	"strings"

	utils "ChatbotApi/pkg/utills"
)

// LocalProvider is a deterministic in-process generator for development and
// tests. It is only ever selected explicitly via PROVIDER=local; a remote
// provider failure never falls back to it.
type LocalProvider struct{}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

func (p *LocalProvider) Generate(ctx context.Context, turns []ChatMessage) (string, error) {
	var last string
	if len(turns) > 0 {
		last = strings.TrimSpace(turns[len(turns)-1].Text)
	}
	if last == "" {
		return "", providerErr("no user turn to answer")
	}
	exchanges := 0
	for _, t := range turns {
		if t.Role == "model" {
			exchanges++
		}
	}
	return fmt.Sprintf("You said: %q. This is reply number %d from the local provider.",
		utils.TruncateEllipsis(last, 60), exchanges+1), nil
}
