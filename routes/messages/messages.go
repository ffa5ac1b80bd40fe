package messages

import (
	"github.com/gin-gonic/gin"

	"ChatbotApi/controllers"
	"ChatbotApi/middleware"
	svc "ChatbotApi/pkg/services"
)

// Register registers message routes under /api. The send path sits behind
// the rate limiter.
func Register(g *gin.RouterGroup, messages *svc.MessageService) {
	g.POST("/messages/:botId", middleware.RateLimit(), controllers.SendMessage(messages))
	g.GET("/messages/:botId", controllers.ListMessages(messages))
}
