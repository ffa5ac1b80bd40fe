package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BotID       uint      `gorm:"index;not null" json:"botId"`
	Bot         Bot       `json:"-"`
	UserMessage string    `gorm:"size:250;not null" json:"userMessage"`
	BotResponse string    `gorm:"size:500;not null" json:"botResponse"`
	Timestamp   time.Time `gorm:"index" json:"timestamp"`
}

// Validate checks that both sides of the exchange are present and within
// bounds. A message row is only ever created with both texts populated.
func (m *Message) Validate() bool {
	if strings.TrimSpace(m.UserMessage) == "" || strings.TrimSpace(m.BotResponse) == "" {
		return false
	}
	u := utf8.RuneCountInString(m.UserMessage)
	b := utf8.RuneCountInString(m.BotResponse)
	return u >= 1 && u <= 250 && b >= 1 && b <= 500
}
