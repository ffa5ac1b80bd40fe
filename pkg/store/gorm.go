package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ChatbotApi/models"
)

// GormBotStore is the relational BotStore.
type GormBotStore struct {
	db *gorm.DB
}

func NewGormBotStore(db *gorm.DB) *GormBotStore {
	return &GormBotStore{db: db}
}

func (s *GormBotStore) Create(ctx context.Context, bot *models.Bot) error {
	return s.db.WithContext(ctx).Create(bot).Error
}

func (s *GormBotStore) GetByID(ctx context.Context, id uint) (*models.Bot, error) {
	var bot models.Bot
	if err := s.db.WithContext(ctx).First(&bot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bot, nil
}

func (s *GormBotStore) List(ctx context.Context, pageNumber, pageSize int) ([]models.Bot, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	var bots []models.Bot
	err := s.db.WithContext(ctx).
		Order("name").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&bots).Error
	return bots, err
}

func (s *GormBotStore) Update(ctx context.Context, bot *models.Bot) error {
	return s.db.WithContext(ctx).Save(bot).Error
}

// Delete removes the bot's messages and the bot in one transaction, so the
// cascade holds regardless of whether the driver enforces foreign keys.
func (s *GormBotStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bot_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bot{}, id).Error
	})
}

func (s *GormBotStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Bot{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *GormBotStore) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Bot{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// GormMessageStore is the relational MessageStore.
type GormMessageStore struct {
	db *gorm.DB
}

func NewGormMessageStore(db *gorm.DB) *GormMessageStore {
	return &GormMessageStore{db: db}
}

func (s *GormMessageStore) Create(ctx context.Context, msg *models.Message) error {
	return s.db.WithContext(ctx).Create(msg).Error
}

func (s *GormMessageStore) ListByBot(ctx context.Context, botID uint) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("bot_id = ?", botID).
		Order("timestamp").
		Find(&msgs).Error
	return msgs, err
}

// ListRecentByBot fetches the newest limit rows (timestamp descending) and
// reverses them in memory, yielding the most recent window in chronological
// order without scanning the whole table forward.
func (s *GormMessageStore) ListRecentByBot(ctx context.Context, botID uint, limit int) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("bot_id = ?", botID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
