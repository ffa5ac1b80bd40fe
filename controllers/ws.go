package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ChatbotApi/pkg/config"
	svc "ChatbotApi/pkg/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS handled at HTTP level; allow WS here
		return true
	},
}

type wsRequest struct {
	Type    string `json:"type"` // "send" or "history"
	BotID   int    `json:"botId"`
	Message string `json:"message,omitempty"`
}

// ChatWS relays the exchange flow over a persistent connection.
// Client protocol (JSON messages):
//
//	-> {type: "send", botId: number, message: string}
//	<- {type: "message", botId, userMessage, botResponse, timestamp}
//	<- {type: "message", error: string}
//	-> {type: "history", botId: number}
//	<- {type: "history", botId, messages: [...]}
//	<- {type: "history", error: string}
//
// Errors come back on the same event type as the result they replace, as a
// payload carrying only an "error" field.
func ChatWS(messages *svc.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ws] upgrade error: %v", err)
			return
		}
		defer conn.Close()

		conn.SetReadLimit(1 << 20) // 1MB
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		})

		for {
			mt, msgBytes, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Printf("[ws] read error: %v", err)
				}
				return
			}
			if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
				continue
			}
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

			var req wsRequest
			if err := json.Unmarshal(msgBytes, &req); err != nil {
				_ = conn.WriteJSON(gin.H{"type": "message", "error": "invalid payload"})
				continue
			}

			switch strings.ToLower(strings.TrimSpace(req.Type)) {
			case "send":
				handleSend(c, conn, messages, req)
			case "history":
				handleHistory(c, conn, messages, req)
			default:
				_ = conn.WriteJSON(gin.H{"type": "message", "error": "unknown request type"})
			}
		}
	}
}

func handleSend(c *gin.Context, conn *websocket.Conn, messages *svc.MessageService, req wsRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(config.GenerateTimeoutSeconds)*time.Second)
	defer cancel()

	resp, err := messages.SendMessage(ctx, req.BotID, req.Message)
	if err != nil {
		_ = conn.WriteJSON(gin.H{"type": "message", "error": wsErrorText(err)})
		return
	}
	_ = conn.WriteJSON(gin.H{
		"type":        "message",
		"botId":       req.BotID,
		"userMessage": resp.UserMessage,
		"botResponse": resp.BotResponse,
		"timestamp":   resp.Timestamp,
	})
}

func handleHistory(c *gin.Context, conn *websocket.Conn, messages *svc.MessageService, req wsRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	list, err := messages.GetMessagesByBot(ctx, req.BotID)
	if err != nil {
		_ = conn.WriteJSON(gin.H{"type": "history", "error": wsErrorText(err)})
		return
	}
	_ = conn.WriteJSON(gin.H{"type": "history", "botId": req.BotID, "messages": list})
}

// wsErrorText maps service errors to client-safe text; anything unexpected is
// logged and replaced with a generic message.
func wsErrorText(err error) string {
	switch {
	case errors.Is(err, svc.ErrBotNotFound):
		return "bot not found"
	case errors.Is(err, svc.ErrInvalidMessageData):
		return err.Error()
	case errors.Is(err, svc.ErrProvider):
		log.Printf("[ws] provider error: %v", err)
		return "failed to generate a response"
	default:
		log.Printf("[ws] unexpected error: %v", err)
		return "internal server error"
	}
}
