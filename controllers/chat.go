// controllers/chat.go
package controllers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ryklith/photo-library-chat/services/chat"
	"github.com/ryklith/photo-library-chat/types"
)

type ChatController struct {
	dispatcher *chat.Dispatcher
}

func NewChatController(dispatcher *chat.Dispatcher) *ChatController {
	return &ChatController{dispatcher: dispatcher}
}

// Send normalizes the loosely-shaped history from the wire and forwards
// the message to the webhook dispatcher.
func (c *ChatController) Send(ctx context.Context, req types.ChatRequest) types.DispatchResult {
	history := make([]types.ChatMessage, 0, len(req.ChatHistory))
	for _, msg := range req.ChatHistory {
		history = append(history, normalizeHistoryMessage(msg))
	}
	return c.dispatcher.SendMessage(ctx, req.Message, history)
}

// normalizeHistoryMessage fills the optional wire fields: missing ids
// get a fresh msg- id, missing or unparseable timestamps become now.
func normalizeHistoryMessage(msg types.HistoryMessage) types.ChatMessage {
	id := msg.ID
	if id == "" {
		id = "msg-" + uuid.NewString()
	}
	timestamp := time.Now()
	if msg.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, msg.Timestamp); err == nil {
			timestamp = parsed
		}
	}
	return types.ChatMessage{
		ID:        id,
		Content:   msg.Content,
		Timestamp: timestamp,
		IsUser:    msg.IsUser,
	}
}
