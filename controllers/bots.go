package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svc "ChatbotApi/pkg/services"
)

type botBody struct {
	Name    string `json:"name"`
	Context string `json:"context"`
}

// CreateBot handles POST /api/bots.
func CreateBot(bots *svc.BotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body botBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		bot, err := bots.Create(c.Request.Context(), body.Name, body.Context)
		if err != nil {
			if errors.Is(err, svc.ErrInvalidBotData) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			internalError(c, "create bot", err)
			return
		}
		c.JSON(http.StatusCreated, bot)
	}
}

// GetBot handles GET /api/bots/:id.
func GetBot(bots *svc.BotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := botIDParam(c, "id")
		if !ok {
			return
		}
		bot, err := bots.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, svc.ErrBotNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "bot not found"})
				return
			}
			internalError(c, "get bot", err)
			return
		}
		c.JSON(http.StatusOK, bot)
	}
}

// ListBots handles GET /api/bots?pageNumber&pageSize.
func ListBots(bots *svc.BotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pageNumber := intQuery(c, "pageNumber", 1)
		pageSize := intQuery(c, "pageSize", 25)
		page, err := bots.List(c.Request.Context(), pageNumber, pageSize)
		if err != nil {
			internalError(c, "list bots", err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// UpdateBot handles PUT /api/bots/:id.
func UpdateBot(bots *svc.BotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := botIDParam(c, "id")
		if !ok {
			return
		}
		var body botBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if _, err := bots.Update(c.Request.Context(), uint(id), body.Name, body.Context); err != nil {
			switch {
			case errors.Is(err, svc.ErrBotNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "bot not found"})
			case errors.Is(err, svc.ErrInvalidBotData):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			default:
				internalError(c, "update bot", err)
			}
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeleteBot handles DELETE /api/bots/:id. Deleting a bot removes all of its
// messages.
func DeleteBot(bots *svc.BotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := botIDParam(c, "id")
		if !ok {
			return
		}
		if err := bots.Delete(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, svc.ErrBotNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "bot not found"})
				return
			}
			internalError(c, "delete bot", err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func botIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bot id must be a positive number"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.Query(name)); err == nil && v > 0 {
		return v
	}
	return def
}

// internalError logs the full error server-side and returns a generic body;
// internal detail never reaches the client.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("[api] %s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
