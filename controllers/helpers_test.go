package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"ChatbotApi/middleware"
	svc "ChatbotApi/pkg/services"
	"ChatbotApi/pkg/store"
	"ChatbotApi/routes"
)

// stubProvider is a canned generation backend for handler tests.
type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Generate(ctx context.Context, turns []svc.ChatMessage) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func setupServer(t *testing.T, provider svc.Provider) (*httptest.Server, *svc.BotService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// generous budget so tests never trip the limiter
	middleware.SetRateLimitConfig(time.Second, 1000)

	mem := store.NewMemoryStore()
	bots := svc.NewBotService(mem)
	messages := svc.NewMessageService(mem, mem.Messages(), provider, 5)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{Bots: bots, Messages: messages})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, bots
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var decoded map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func doJSONList(t *testing.T, url string) (*http.Response, []map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode list from %s: %v", url, err)
	}
	return resp, decoded
}

func createBot(t *testing.T, baseURL, name, botContext string) int {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/api/bots", map[string]string{
		"name":    name,
		"context": botContext,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create bot: status %d, body %v", resp.StatusCode, body)
	}
	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("create bot: no id in %v", body)
	}
	return int(id)
}
