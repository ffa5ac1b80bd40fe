package store

import (
	"context"
	"errors"

	"ChatbotApi/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// BotStore persists bots.
type BotStore interface {
	Create(ctx context.Context, bot *models.Bot) error
	GetByID(ctx context.Context, id uint) (*models.Bot, error)
	// List returns one page of bots ordered by name.
	List(ctx context.Context, pageNumber, pageSize int) ([]models.Bot, error)
	Update(ctx context.Context, bot *models.Bot) error
	// Delete removes the bot and all of its messages.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)
	// NameTaken reports whether another bot (id != excludeID) already uses name.
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
}

// MessageStore persists exchanges.
type MessageStore interface {
	Create(ctx context.Context, msg *models.Message) error
	// ListByBot returns all messages for a bot in chronological order.
	ListByBot(ctx context.Context, botID uint) ([]models.Message, error)
	// ListRecentByBot returns the limit most recent messages for a bot,
	// in chronological order. Fewer than limit rows means all of them;
	// no rows is an empty slice, not an error.
	ListRecentByBot(ctx context.Context, botID uint, limit int) ([]models.Message, error)
}
