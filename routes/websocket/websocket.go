package websocket

import (
	"github.com/gin-gonic/gin"

	"ChatbotApi/controllers"
	"ChatbotApi/middleware"
	svc "ChatbotApi/pkg/services"
)

func Register(r *gin.Engine, messages *svc.MessageService) {
	r.GET("/ws/chat", middleware.RateLimit(), controllers.ChatWS(messages))
}
