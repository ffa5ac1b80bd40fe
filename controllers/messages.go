package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svc "ChatbotApi/pkg/services"
)

type sendMessageBody struct {
	UserMessage string `json:"userMessage"`
}

// SendMessage handles POST /api/messages/:botId. One user turn in, one
// generated exchange out.
func SendMessage(messages *svc.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		botID, err := strconv.Atoi(c.Param("botId"))
		if err != nil || botID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "bot id must be a positive number"})
			return
		}
		var body sendMessageBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}

		resp, err := messages.SendMessage(c.Request.Context(), botID, body.UserMessage)
		if err != nil {
			switch {
			case errors.Is(err, svc.ErrBotNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "bot not found"})
			case errors.Is(err, svc.ErrInvalidMessageData):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			case errors.Is(err, svc.ErrProvider):
				internalError(c, "generate response", err)
			default:
				internalError(c, "send message", err)
			}
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ListMessages handles GET /api/messages/:botId, chronological order.
func ListMessages(messages *svc.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		botID, err := strconv.Atoi(c.Param("botId"))
		if err != nil || botID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "bot id must be a positive number"})
			return
		}
		list, err := messages.GetMessagesByBot(c.Request.Context(), botID)
		if err != nil {
			if errors.Is(err, svc.ErrBotNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "bot not found"})
				return
			}
			internalError(c, "list messages", err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
