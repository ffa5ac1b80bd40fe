package services

import (
	"strings"

	"ChatbotApi/models"
)

// ReadyAck is the synthetic model turn that follows the persona turn. Most
// generation APIs have no dedicated system-role slot, so the persona is
// injected as a leading user/model pair instead.
const ReadyAck = "Understood. I am ready to help."

// BuildChatTurns assembles the ordered turns for one generation request:
// an optional (persona, ack) pair, then a (user, model) pair per prior
// exchange in chronological order, then the new user message. Turns strictly
// alternate and always end on a "user" turn.
func BuildChatTurns(persona string, history []models.Message, userMessage string) []ChatMessage {
	turns := make([]ChatMessage, 0, 2*len(history)+3)

	if strings.TrimSpace(persona) != "" {
		turns = append(turns,
			ChatMessage{Role: "user", Text: persona},
			ChatMessage{Role: "model", Text: ReadyAck},
		)
	}

	for _, m := range history {
		turns = append(turns,
			ChatMessage{Role: "user", Text: m.UserMessage},
			ChatMessage{Role: "model", Text: m.BotResponse},
		)
	}

	return append(turns, ChatMessage{Role: "user", Text: userMessage})
}
