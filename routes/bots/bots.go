package bots

import (
	"github.com/gin-gonic/gin"

	"ChatbotApi/controllers"
	svc "ChatbotApi/pkg/services"
)

// Register registers bot CRUD routes under /api.
func Register(g *gin.RouterGroup, bots *svc.BotService) {
	g.POST("/bots", controllers.CreateBot(bots))
	g.GET("/bots", controllers.ListBots(bots))
	g.GET("/bots/:id", controllers.GetBot(bots))
	g.PUT("/bots/:id", controllers.UpdateBot(bots))
	g.DELETE("/bots/:id", controllers.DeleteBot(bots))
}
