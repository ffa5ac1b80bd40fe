package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ChatbotApi/models"
)

// MemoryStore keeps bots and messages in process memory. It backs tests and
// the DB_DRIVER=memory mode; everything is copied in and out so callers never
// share slices with the store.
type MemoryStore struct {
	mu        sync.RWMutex
	bots      map[uint]models.Bot
	messages  map[uint][]models.Message // keyed by bot id
	nextBotID uint
	nextMsgID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bots:      make(map[uint]models.Bot),
		messages:  make(map[uint][]models.Message),
		nextBotID: 1,
		nextMsgID: 1,
	}
}

func (s *MemoryStore) Create(ctx context.Context, bot *models.Bot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bot.ID = s.nextBotID
	s.nextBotID++
	s.bots[bot.ID] = *bot
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id uint) (*models.Bot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bot, ok := s.bots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &bot, nil
}

func (s *MemoryStore) List(ctx context.Context, pageNumber, pageSize int) ([]models.Bot, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	s.mu.RLock()
	all := make([]models.Bot, 0, len(s.bots))
	for _, b := range s.bots {
		all = append(all, b)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	start := (pageNumber - 1) * pageSize
	if start >= len(all) {
		return []models.Bot{}, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (s *MemoryStore) Update(ctx context.Context, bot *models.Bot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bots[bot.ID]; !ok {
		return ErrNotFound
	}
	s.bots[bot.ID] = *bot
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bots, id)
	delete(s.messages, id)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, id uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bots[id]
	return ok, nil
}

func (s *MemoryStore) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bots {
		if b.ID != excludeID && strings.EqualFold(b.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) CreateMessage(ctx context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = s.nextMsgID
	s.nextMsgID++
	s.messages[msg.BotID] = append(s.messages[msg.BotID], *msg)
	return nil
}

func (s *MemoryStore) ListByBot(ctx context.Context, botID uint) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := append([]models.Message(nil), s.messages[botID]...)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}

func (s *MemoryStore) ListRecentByBot(ctx context.Context, botID uint, limit int) ([]models.Message, error) {
	msgs, _ := s.ListByBot(ctx, botID)
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

// Messages adapts the MemoryStore to the MessageStore interface, whose Create
// signature collides with BotStore's.
func (s *MemoryStore) Messages() MessageStore {
	return memoryMessages{s}
}

type memoryMessages struct {
	s *MemoryStore
}

func (m memoryMessages) Create(ctx context.Context, msg *models.Message) error {
	return m.s.CreateMessage(ctx, msg)
}

func (m memoryMessages) ListByBot(ctx context.Context, botID uint) ([]models.Message, error) {
	return m.s.ListByBot(ctx, botID)
}

func (m memoryMessages) ListRecentByBot(ctx context.Context, botID uint, limit int) ([]models.Message, error) {
	return m.s.ListRecentByBot(ctx, botID, limit)
}
