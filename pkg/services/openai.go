package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"ChatbotApi/pkg/config"
)

// OpenAIProvider calls the chat completions endpoint. The "model" role used
// elsewhere in this package maps to OpenAI's "assistant".
type OpenAIProvider struct {
	apiKey     string
	url        string
	model      string
	httpClient *http.Client
}

func NewOpenAIProvider() *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:     config.OpenAIAPIKey,
		url:        config.OpenAIBaseURL,
		model:      config.OpenAIModel,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, turns []ChatMessage) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", providerErr("OPENAI_API_KEY is not set")
	}

	messages := make([]openAIMessage, 0, len(turns))
	for _, t := range turns {
		role := "user"
		if strings.EqualFold(t.Role, "model") {
			role = "assistant"
		}
		messages = append(messages, openAIMessage{Role: role, Content: t.Text})
	}

	payload, err := json.Marshal(openAIRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: 0.7,
	})
	if err != nil {
		return "", providerErr("marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return "", providerErr("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", providerErr("http error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", providerErr("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", providerErr("decode response: %v", err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", providerErr("no candidate text in response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
