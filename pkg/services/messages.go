package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ChatbotApi/models"
	"ChatbotApi/pkg/store"
	utils "ChatbotApi/pkg/utills"
)

var ErrInvalidMessageData = errors.New("invalid message data")

// maxResponseRunes is the persistence bound on botResponse. Generated text
// beyond it is truncated before the row is written.
const maxResponseRunes = 500

// MessageResponse is what one completed exchange looks like to callers.
type MessageResponse struct {
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Timestamp   time.Time `json:"timestamp"`
}

// MessageService runs the exchange flow: validate, look up the bot, fetch the
// history window, assemble the prompt, call the provider and persist the
// exchange. Every failure is terminal for that one request.
type MessageService struct {
	bots         store.BotStore
	messages     store.MessageStore
	provider     Provider
	historyLimit int
}

func NewMessageService(bots store.BotStore, messages store.MessageStore, provider Provider, historyLimit int) *MessageService {
	if historyLimit <= 0 {
		historyLimit = 5
	}
	return &MessageService{bots: bots, messages: messages, provider: provider, historyLimit: historyLimit}
}

func (s *MessageService) SendMessage(ctx context.Context, botID int, userMessage string) (*MessageResponse, error) {
	if botID <= 0 {
		return nil, fmt.Errorf("%w: bot id must be a positive number", ErrInvalidMessageData)
	}
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidMessageData)
	}

	bot, err := s.bots.GetByID(ctx, uint(botID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBotNotFound
	}
	if err != nil {
		return nil, err
	}

	history, err := s.messages.ListRecentByBot(ctx, bot.ID, s.historyLimit)
	if err != nil {
		return nil, err
	}

	turns := BuildChatTurns(bot.Context, history, userMessage)
	reply, err := s.provider.Generate(ctx, turns)
	if err != nil {
		if errors.Is(err, ErrProvider) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	msg := &models.Message{
		BotID:       bot.ID,
		UserMessage: userMessage,
		BotResponse: utils.Truncate(reply, maxResponseRunes),
		Timestamp:   time.Now().UTC(),
	}
	if !msg.Validate() {
		return nil, fmt.Errorf("%w: message data is invalid", ErrInvalidMessageData)
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	return &MessageResponse{
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		Timestamp:   msg.Timestamp,
	}, nil
}

// GetMessagesByBot returns the full chronological exchange list for a bot.
func (s *MessageService) GetMessagesByBot(ctx context.Context, botID int) ([]MessageResponse, error) {
	if botID <= 0 {
		return nil, fmt.Errorf("%w: bot id must be a positive number", ErrInvalidMessageData)
	}
	_, err := s.bots.GetByID(ctx, uint(botID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBotNotFound
	}
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByBot(ctx, uint(botID))
	if err != nil {
		return nil, err
	}
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageResponse{
			UserMessage: m.UserMessage,
			BotResponse: m.BotResponse,
			Timestamp:   m.Timestamp,
		})
	}
	return out, nil
}
