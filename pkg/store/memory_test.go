package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ChatbotApi/models"
)

func seedMessages(t *testing.T, mem *MemoryStore, botID uint, n int) {
	t.Helper()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := mem.CreateMessage(context.Background(), &models.Message{
			BotID:       botID,
			UserMessage: fmt.Sprintf("q%d", i),
			BotResponse: fmt.Sprintf("a%d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed message %d: %v", i, err)
		}
	}
}

func TestListRecentByBotWindow(t *testing.T) {
	mem := NewMemoryStore()
	bot := &models.Bot{Name: "Test", Context: "ctx test", CreatedAt: time.Now()}
	if err := mem.Create(context.Background(), bot); err != nil {
		t.Fatalf("create bot: %v", err)
	}
	seedMessages(t, mem, bot.ID, 8)

	msgs, err := mem.ListRecentByBot(context.Background(), bot.ID, 5)
	if err != nil {
		t.Fatalf("ListRecentByBot failed: %v", err)
	}
	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(msgs))
	}
	// must be the 5 most recent, chronologically ordered
	for i, m := range msgs {
		want := fmt.Sprintf("q%d", i+3)
		if m.UserMessage != want {
			t.Fatalf("position %d: got %q, want %q", i, m.UserMessage, want)
		}
		if i > 0 && m.Timestamp.Before(msgs[i-1].Timestamp) {
			t.Fatalf("position %d: not chronological", i)
		}
	}
}

func TestListRecentByBotFewerThanLimit(t *testing.T) {
	mem := NewMemoryStore()
	bot := &models.Bot{Name: "Test", Context: "ctx test", CreatedAt: time.Now()}
	_ = mem.Create(context.Background(), bot)
	seedMessages(t, mem, bot.ID, 2)

	msgs, err := mem.ListRecentByBot(context.Background(), bot.ID, 5)
	if err != nil {
		t.Fatalf("ListRecentByBot failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected all 2 messages, got %d", len(msgs))
	}
	if msgs[0].UserMessage != "q0" || msgs[1].UserMessage != "q1" {
		t.Fatalf("unexpected order: %q, %q", msgs[0].UserMessage, msgs[1].UserMessage)
	}
}

func TestListRecentByBotEmpty(t *testing.T) {
	mem := NewMemoryStore()
	bot := &models.Bot{Name: "Test", Context: "ctx test", CreatedAt: time.Now()}
	_ = mem.Create(context.Background(), bot)

	msgs, err := mem.ListRecentByBot(context.Background(), bot.ID, 5)
	if err != nil {
		t.Fatalf("empty history must not be an error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty history, got %d", len(msgs))
	}
}

func TestDeleteCascadesToMessages(t *testing.T) {
	mem := NewMemoryStore()
	bot := &models.Bot{Name: "Test", Context: "ctx test", CreatedAt: time.Now()}
	_ = mem.Create(context.Background(), bot)
	seedMessages(t, mem, bot.ID, 3)

	if err := mem.Delete(context.Background(), bot.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := mem.GetByID(context.Background(), bot.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	msgs, err := mem.ListByBot(context.Background(), bot.ID)
	if err != nil {
		t.Fatalf("ListByBot failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected messages removed with bot, got %d", len(msgs))
	}
}

func TestListIsReadOnly(t *testing.T) {
	mem := NewMemoryStore()
	bot := &models.Bot{Name: "Test", Context: "ctx test", CreatedAt: time.Now()}
	_ = mem.Create(context.Background(), bot)
	seedMessages(t, mem, bot.ID, 4)

	first, _ := mem.ListByBot(context.Background(), bot.ID)
	second, _ := mem.ListByBot(context.Background(), bot.ID)
	if len(first) != len(second) {
		t.Fatalf("repeated reads differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].UserMessage != second[i].UserMessage {
			t.Fatalf("repeated reads differ at %d", i)
		}
	}
}
