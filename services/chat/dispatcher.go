// services/chat/dispatcher.go
package chat

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/ryklith/photo-library-chat/config"
	"github.com/ryklith/photo-library-chat/services/gallery"
	"github.com/ryklith/photo-library-chat/types"
	httputils "github.com/ryklith/photo-library-chat/utils/http"
	"github.com/ryklith/photo-library-chat/utils/logging"
)

const (
	errNotConfigured    = "Webhook URL not configured"
	notConfiguredURL    = "Not configured"
	testGreeting        = "Hello from Photo Library Chat!"
	testWorkingMessage  = "Webhook is working correctly"
	testSuccessResponse = "Webhook test successful"
	sentMessage         = "Message sent successfully"
	processedResponse   = "Message processed successfully"
)

// Dispatcher forwards chat traffic to the configured n8n webhook and
// reshapes whatever comes back into a uniform DispatchResult. It never
// raises past its own boundary: every failure, configuration included,
// is folded into the envelope.
type Dispatcher struct {
	webhookURL string
	client     *http.Client
	gallery    *gallery.Extractor
}

func NewDispatcher(cfg config.Config, extractor *gallery.Extractor) *Dispatcher {
	if cfg.WebhookURL == "" {
		logging.AppLogger.Warn("N8N_CHAT_WEBHOOK_URL is not configured")
	}
	return &Dispatcher{
		webhookURL: cfg.WebhookURL,
		client:     http.DefaultClient,
		gallery:    extractor,
	}
}

// TestWebhook sends a fixed diagnostic payload and reports whether the
// webhook answered.
func (d *Dispatcher) TestWebhook(ctx context.Context) types.DispatchResult {
	defer logging.LogDuration(ctx, "dispatcher_test_webhook")()
	if d.webhookURL == "" {
		return types.DispatchResult{Success: false, Error: errNotConfigured}
	}

	payload := map[string]any{
		"type":      "test",
		"message":   testGreeting,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	raw, err := httputils.PostJSON(ctx, d.client, d.webhookURL, payload)
	if err != nil {
		logging.ErrorLogger.Error("webhook test failed", zap.Error(err))
		return types.DispatchResult{Success: false, Error: err.Error()}
	}

	message, ok := raw["output"].(string)
	if !ok || message == "" {
		message = testWorkingMessage
	}
	return types.DispatchResult{
		Success: true,
		Message: message,
		Data: &types.DispatchData{
			Response:          testResponseText(raw),
			IntermediateSteps: stepsOf(raw),
			Raw:               raw,
		},
	}
}

// SendMessage posts the user message plus prior history to the webhook
// and builds the final envelope, attaching a gallery when extraction
// finds one.
func (d *Dispatcher) SendMessage(ctx context.Context, message string, history []types.ChatMessage) types.DispatchResult {
	defer logging.LogDuration(ctx, "dispatcher_send_message")()
	if d.webhookURL == "" {
		return types.DispatchResult{Success: false, Error: errNotConfigured}
	}

	payload := map[string]any{
		"type":    "chat_message",
		"message": message,
		"chatHistory": lo.Map(history, func(msg types.ChatMessage, _ int) map[string]any {
			return map[string]any{
				"content":   msg.Content,
				"isUser":    msg.IsUser,
				"timestamp": msg.Timestamp.UTC().Format(time.RFC3339),
			}
		}),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		// per-call placeholder, intentionally not a stable identity
		"userId": "user-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
	}

	logging.AppLogger.Info("sending message to webhook",
		zap.String("message", message),
		zap.Int("history_len", len(history)),
	)
	raw, err := httputils.PostJSON(ctx, d.client, d.webhookURL, payload)
	if err != nil {
		logging.ErrorLogger.Error("failed to send message", zap.Error(err))
		return types.DispatchResult{Success: false, Error: err.Error()}
	}

	result := types.DispatchResult{
		Success: true,
		Message: sentMessage,
		Data: &types.DispatchData{
			Response:          responseText(raw),
			IntermediateSteps: stepsOf(raw),
			Raw:               raw,
		},
	}
	// an empty extraction result never reaches the caller
	if galleryData := d.gallery.ExtractGalleryData(raw); galleryData != nil && len(galleryData.Images) > 0 {
		logging.AppLogger.Info("gallery extracted", zap.Int("images", len(galleryData.Images)))
		result.Gallery = galleryData
	}
	return result
}

// WebhookStatus is a pure read of the held configuration. No network
// call is made.
func (d *Dispatcher) WebhookStatus() types.WebhookStatus {
	if d.webhookURL == "" {
		return types.WebhookStatus{Configured: false, URL: notConfiguredURL}
	}
	return types.WebhookStatus{Configured: true, URL: d.webhookURL}
}

// responseText resolves the assistant text by priority: a string
// output, then a nested output.output string, then a top-level message,
// then a fixed fallback.
func responseText(raw map[string]any) string {
	if s, ok := raw["output"].(string); ok {
		return s
	}
	if nested, ok := raw["output"].(map[string]any); ok {
		if s, ok := nested["output"].(string); ok {
			return s
		}
	}
	if s, ok := raw["message"].(string); ok {
		return s
	}
	return processedResponse
}

func testResponseText(raw map[string]any) string {
	if s, ok := raw["output"].(string); ok && s != "" {
		return s
	}
	if s, ok := raw["message"].(string); ok && s != "" {
		return s
	}
	return testSuccessResponse
}

func stepsOf(raw map[string]any) []any {
	if steps, ok := raw["intermediateSteps"].([]any); ok {
		return steps
	}
	return []any{}
}
