// types/chat.go
package types

import "time"

// ChatMessage is one turn in a conversation. Immutable once created;
// never persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"isUser"`
}

// ChatRequest is the inbound shape of /api/chat.
type ChatRequest struct {
	Message     string           `json:"message"`
	ChatHistory []HistoryMessage `json:"chatHistory,omitempty"`
}

// HistoryMessage is the loose history shape accepted on the wire.
// Everything except content is optional and defaulted server-side.
type HistoryMessage struct {
	ID        string `json:"id,omitempty"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
	IsUser    bool   `json:"isUser,omitempty"`
}

// DispatchData carries the reshaped webhook reply.
type DispatchData struct {
	Response          string         `json:"response"`
	IntermediateSteps []any          `json:"intermediateSteps"`
	Raw               map[string]any `json:"raw"`
}

// DispatchResult is the uniform envelope returned for every webhook
// call. Exactly one of Message/Error is meaningful depending on
// Success; Gallery is present only when extraction produced images.
type DispatchResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Data    *DispatchData `json:"data,omitempty"`
	Gallery *GalleryData  `json:"gallery,omitempty"`
}

// WebhookStatus is a pure read of the dispatcher configuration.
type WebhookStatus struct {
	Configured bool   `json:"configured"`
	URL        string `json:"url"`
}
