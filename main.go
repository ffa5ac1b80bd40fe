package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ChatbotApi/middleware"
	"ChatbotApi/models"
	"ChatbotApi/pkg/config"
	svc "ChatbotApi/pkg/services"
	"ChatbotApi/pkg/store"
	"ChatbotApi/routes"
)

func main() {
	// config is loaded in pkg/config init()

	botStore, messageStore, err := openStores()
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}

	provider, err := svc.NewProvider(context.Background())
	if err != nil {
		log.Fatalf("failed to init provider: %v", err)
	}

	bots := svc.NewBotService(botStore)
	messages := svc.NewMessageService(botStore, messageStore, provider, config.HistoryLimit)

	middleware.SetRateLimitConfig(
		time.Duration(config.RateLimitWindowSeconds)*time.Second,
		config.RateLimitCapacity,
	)

	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS for the React frontend dev servers
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{Bots: bots, Messages: messages})

	if err := r.Run(":" + config.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func openStores() (store.BotStore, store.MessageStore, error) {
	if config.DBDriver == "memory" {
		mem := store.NewMemoryStore()
		return mem, mem.Messages(), nil
	}

	var (
		db  *gorm.DB
		err error
	)
	switch config.DBDriver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(config.MySQLDSN), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
	}
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&models.Bot{}, &models.Message{}); err != nil {
		return nil, nil, err
	}
	return store.NewGormBotStore(db), store.NewGormMessageStore(db), nil
}
