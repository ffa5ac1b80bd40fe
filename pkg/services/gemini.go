package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"ChatbotApi/pkg/config"
)

// GeminiProvider calls the Google Generative Language API directly.
type GeminiProvider struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{
		apiKey:     config.GeminiAPIKey,
		model:      config.GeminiModel,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (p *GeminiProvider) Generate(ctx context.Context, turns []ChatMessage) (string, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return "", providerErr("GEMINI_API_KEY is not set")
	}

	contents := make([]any, 0, len(turns))
	for _, t := range turns {
		role := strings.ToLower(strings.TrimSpace(t.Role))
		if role != "user" && role != "model" {
			role = "user"
		}
		contents = append(contents, map[string]any{
			"role":  role,
			"parts": []any{map[string]any{"text": t.Text}},
		})
	}
	reqBody := map[string]any{
		"contents": contents,
		"generationConfig": map[string]any{
			"temperature":     0.7,
			"maxOutputTokens": 1024,
			"topK":            40,
			"topP":            0.9,
		},
	}
	bodyBytes, _ := json.Marshal(reqBody)

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", p.model, p.apiKey)
	log.Printf("[gemini] using model %s", p.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", providerErr("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", providerErr("http error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", providerErr("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var obj map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		return "", providerErr("decode response: %v", err)
	}
	text := extractCandidateText(obj)
	if strings.TrimSpace(text) == "" {
		return "", providerErr("no candidate text in response")
	}
	return strings.TrimSpace(text), nil
}

// extractCandidateText pulls the first candidate's concatenated part texts
// out of a generateContent response.
func extractCandidateText(obj map[string]any) string {
	cands, ok := obj["candidates"].([]any)
	if !ok || len(cands) == 0 {
		return ""
	}
	first, ok := cands[0].(map[string]any)
	if !ok {
		return ""
	}
	content, ok := first["content"].(map[string]any)
	if !ok {
		return ""
	}
	parts, ok := content["parts"].([]any)
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, part := range parts {
		if pm, ok := part.(map[string]any); ok {
			if txt, ok := pm["text"].(string); ok {
				b.WriteString(txt)
			}
		}
	}
	return b.String()
}
