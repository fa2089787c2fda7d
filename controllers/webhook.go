// controllers/webhook.go
package controllers

import (
	"context"

	"github.com/ryklith/photo-library-chat/services/chat"
	"github.com/ryklith/photo-library-chat/types"
)

type WebhookController struct {
	dispatcher *chat.Dispatcher
}

func NewWebhookController(dispatcher *chat.Dispatcher) *WebhookController {
	return &WebhookController{dispatcher: dispatcher}
}

// Test fires the fixed diagnostic payload at the configured webhook.
func (c *WebhookController) Test(ctx context.Context) types.DispatchResult {
	return c.dispatcher.TestWebhook(ctx)
}

// Status reports the held configuration without touching the network.
func (c *WebhookController) Status() types.WebhookStatus {
	return c.dispatcher.WebhookStatus()
}
