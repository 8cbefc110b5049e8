// Package notify is the notification-dispatch capability handed to
// components that need user feedback. It is always injected explicitly;
// nothing looks it up ambiently.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Event is one user-facing notification.
type Event struct {
	UserID  string `json:"user_id"`
	Kind    string `json:"kind"` // "success", "error", "celebrate"
	Message string `json:"message"`
}

// Notifier dispatches notification events.
type Notifier interface {
	Send(ctx context.Context, event Event) error
}

// WebhookNotifier posts events to a notification webhook.
type WebhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookNotifier creates a Notifier posting to the given webhook URL.
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{},
	}
}

// Send posts the event as JSON.
func (n *WebhookNotifier) Send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notification webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notification webhook error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// NopNotifier swallows every event. Used when no webhook is configured
// and in tests.
type NopNotifier struct{}

func (NopNotifier) Send(ctx context.Context, event Event) error { return nil }
