package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ChatbotApi/models"
	"ChatbotApi/pkg/store"
)

var (
	ErrBotNotFound    = errors.New("bot not found")
	ErrInvalidBotData = errors.New("invalid bot data")
)

// BotService implements bot CRUD on top of a BotStore.
type BotService struct {
	bots store.BotStore
}

func NewBotService(bots store.BotStore) *BotService {
	return &BotService{bots: bots}
}

func (s *BotService) Create(ctx context.Context, name, botContext string) (*models.Bot, error) {
	bot := &models.Bot{
		Name:      strings.TrimSpace(name),
		Context:   strings.TrimSpace(botContext),
		CreatedAt: time.Now().UTC(),
	}
	if !bot.Validate() {
		return nil, fmt.Errorf("%w: name must be 3-50 characters and context 3-250 characters", ErrInvalidBotData)
	}
	taken, err := s.bots.NameTaken(ctx, bot.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: a bot named %q already exists", ErrInvalidBotData, bot.Name)
	}
	if err := s.bots.Create(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

func (s *BotService) GetByID(ctx context.Context, id uint) (*models.Bot, error) {
	bot, err := s.bots.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBotNotFound
	}
	return bot, err
}

func (s *BotService) List(ctx context.Context, pageNumber, pageSize int) ([]models.Bot, error) {
	return s.bots.List(ctx, pageNumber, pageSize)
}

func (s *BotService) Update(ctx context.Context, id uint, name, botContext string) (*models.Bot, error) {
	bot, err := s.bots.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBotNotFound
	}
	if err != nil {
		return nil, err
	}

	bot.Name = strings.TrimSpace(name)
	bot.Context = strings.TrimSpace(botContext)
	now := time.Now().UTC()
	bot.UpdatedAt = &now

	if !bot.Validate() {
		return nil, fmt.Errorf("%w: name must be 3-50 characters and context 3-250 characters", ErrInvalidBotData)
	}
	taken, err := s.bots.NameTaken(ctx, bot.Name, bot.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: a bot named %q already exists", ErrInvalidBotData, bot.Name)
	}
	if err := s.bots.Update(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

func (s *BotService) Delete(ctx context.Context, id uint) error {
	exists, err := s.bots.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBotNotFound
	}
	return s.bots.Delete(ctx, id)
}
