// utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx reply from the webhook.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook request failed: status %d", e.Code)
}

// PostJSON posts body as JSON and decodes the reply into a generic map.
// The webhook reply schema is not contractually fixed, so callers get
// the raw mapping and probe it themselves.
func PostJSON(ctx context.Context, client *http.Client, url string, body any) (map[string]any, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	r, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return nil, &StatusError{Code: r.StatusCode}
	}
	var reply map[string]any
	if err := json.NewDecoder(r.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode webhook reply: %w", err)
	}
	return reply, nil
}
