package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	svc "ChatbotApi/pkg/services"

	botRoutes "ChatbotApi/routes/bots"
	messageRoutes "ChatbotApi/routes/messages"
	websocketRoutes "ChatbotApi/routes/websocket"
)

// Deps carries the services the route handlers close over.
type Deps struct {
	Bots     *svc.BotService
	Messages *svc.MessageService
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"msg": "chatbot api running"})
	})

	api := r.Group("/api")
	botRoutes.Register(api, deps.Bots)
	messageRoutes.Register(api, deps.Messages)

	websocketRoutes.Register(r, deps.Messages)
}
