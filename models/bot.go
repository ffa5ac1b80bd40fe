package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Bot struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Context   string     `gorm:"size:250;not null" json:"context"`
	Messages  []Message  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Validate checks the length bounds after trimming. A bot that fails
// these bounds is never persisted.
func (b *Bot) Validate() bool {
	name := strings.TrimSpace(b.Name)
	ctx := strings.TrimSpace(b.Context)
	n := utf8.RuneCountInString(name)
	c := utf8.RuneCountInString(ctx)
	return n >= 3 && n <= 50 && c >= 3 && c <= 250
}
