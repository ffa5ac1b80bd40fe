package main

import (
	"context"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ChatbotApi/models"
	"ChatbotApi/pkg/config"
	svc "ChatbotApi/pkg/services"
	"ChatbotApi/pkg/store"
)

// Seeds a handful of sample bots into the configured sqlite database so the
// frontend has something to show on a fresh checkout.
func main() {
	db, err := gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Bot{}, &models.Message{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	bots := svc.NewBotService(store.NewGormBotStore(db))
	ctx := context.Background()

	samples := []struct{ name, context string }{
		{"Helper", "You are a friendly general-purpose assistant. Keep answers short and practical."},
		{"Chef", "You are a home-cooking expert. Suggest simple recipes from whatever ingredients the user lists."},
		{"Tutor", "You are a patient math tutor for middle-school students. Explain step by step."},
	}

	for _, s := range samples {
		bot, err := bots.Create(ctx, s.name, s.context)
		if err != nil {
			log.Printf("[seed] skipping %q: %v", s.name, err)
			continue
		}
		log.Printf("[seed] created bot %d %q", bot.ID, bot.Name)
	}
}
