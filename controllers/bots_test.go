package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCreateAndGetBot(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})

	id := createBot(t, server.URL, "Test", "You are helpful")

	resp, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/bots/%d", server.URL, id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get bot: status %d", resp.StatusCode)
	}
	if body["name"] != "Test" || body["context"] != "You are helpful" {
		t.Fatalf("unexpected bot body: %v", body)
	}
	if body["createdAt"] == nil {
		t.Fatalf("expected createdAt in body: %v", body)
	}
}

func TestCreateBotInvalidData(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})

	cases := []map[string]string{
		{"name": "ab", "context": "valid context"},
		{"name": strings.Repeat("n", 51), "context": "valid context"},
		{"name": "valid name", "context": "ab"},
		{"name": "", "context": ""},
	}
	for _, c := range cases {
		resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/bots", c)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %v: expected 400, got %d", c, resp.StatusCode)
		}
	}
}

func TestGetBotNotFound(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})
	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/bots/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (%v)", resp.StatusCode, body)
	}
	if body["message"] == nil {
		t.Fatalf("expected error message in body: %v", body)
	}
}

func TestListBotsOrderedByName(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		createBot(t, server.URL, name, "some context")
	}

	resp, list := doJSONList(t, server.URL+"/api/bots")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list bots: status %d", resp.StatusCode)
	}
	want := []string{"Alpha", "Bravo", "Charlie"}
	if len(list) != len(want) {
		t.Fatalf("expected %d bots, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i]["name"] != name {
			t.Fatalf("position %d: got %v, want %q", i, list[i]["name"], name)
		}
	}
}

func TestUpdateBot(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})
	id := createBot(t, server.URL, "Before", "old context")

	resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/bots/%d", server.URL, id), map[string]string{
		"name":    "After",
		"context": "new context",
	})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d", resp.StatusCode)
	}

	_, body := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/bots/%d", server.URL, id), nil)
	if body["name"] != "After" || body["context"] != "new context" {
		t.Fatalf("update not applied: %v", body)
	}
	if body["updatedAt"] == nil {
		t.Fatalf("expected updatedAt after update: %v", body)
	}
}

func TestUpdateBotFailures(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})
	id := createBot(t, server.URL, "Test", "some context")

	resp, _ := doJSON(t, http.MethodPut, server.URL+"/api/bots/999", map[string]string{
		"name": "Name", "context": "some context",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing bot: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/bots/%d", server.URL, id), map[string]string{
		"name": "ab", "context": "some context",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid data: expected 400, got %d", resp.StatusCode)
	}
}

func TestDeleteBotCascades(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "Hello!"})
	id := createBot(t, server.URL, "Test", "some context")

	resp, _ := doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/messages/%d", server.URL, id), map[string]string{
		"userMessage": "Hi",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send message: status %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/bots/%d", server.URL, id), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/bots/%d", server.URL, id), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected bot gone, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/messages/%d", server.URL, id), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected message listing for deleted bot to 404, got %d", resp.StatusCode)
	}
}

func TestDeleteBotNotFound(t *testing.T) {
	server, _ := setupServer(t, &stubProvider{reply: "ok"})
	resp, _ := doJSON(t, http.MethodDelete, server.URL+"/api/bots/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
