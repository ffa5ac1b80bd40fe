package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ChatbotApi/pkg/config"
)

// VertexProvider generates through Vertex AI using the genai SDK.
// Credentials come from the environment (application default credentials).
type VertexProvider struct {
	client *genai.Client
	model  string
}

func NewVertexProvider(ctx context.Context) (*VertexProvider, error) {
	if config.VertexProject == "" || config.VertexLocation == "" {
		return nil, fmt.Errorf("VERTEX_PROJECT and VERTEX_LOCATION must be set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  config.VertexProject,
		Location: config.VertexLocation,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}
	return &VertexProvider{client: client, model: config.VertexModel}, nil
}

func (p *VertexProvider) Generate(ctx context.Context, turns []ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if strings.EqualFold(t.Role, "model") {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}

	temp := float32(0.7)
	topP := float32(0.9)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: 1024,
	}

	res, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return "", providerErr("vertex generate content: %v", err)
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", providerErr("no candidate text in response")
	}
	return text, nil
}
