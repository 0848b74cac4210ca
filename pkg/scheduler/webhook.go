package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/postpilot/postpilot/pkg/domain"
)

// WebhookPublisher delivers items by posting JSON payloads to per-platform
// webhook URLs. It is the default Publisher implementation.
type WebhookPublisher struct {
	webhooks map[domain.Platform]string
	client   *http.Client
}

// webhookPayload is the delivery body sent to a platform endpoint
type webhookPayload struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Handle   string `json:"handle,omitempty"`
	Topic    string `json:"topic"`
	Body     string `json:"body"`
	MediaRef string `json:"media_ref,omitempty"`
}

// NewWebhookPublisher creates a publisher for the configured webhook URLs
func NewWebhookPublisher(webhooks map[string]string, timeout time.Duration) *WebhookPublisher {
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	urls := make(map[domain.Platform]string, len(webhooks))
	for platform, url := range webhooks {
		urls[domain.Platform(platform)] = url
	}

	return &WebhookPublisher{
		webhooks: urls,
		client:   &http.Client{Timeout: timeout},
	}
}

// Publish posts the item to the platform's webhook. Every failure is a
// PlatformError so the dispatcher can attribute it.
func (p *WebhookPublisher) Publish(ctx context.Context, item *domain.ContentItem, conn *domain.Connection) error {
	url, ok := p.webhooks[conn.Platform]
	if !ok || url == "" {
		return &domain.PlatformError{Platform: conn.Platform, Cause: fmt.Errorf("no webhook configured")}
	}

	payload := webhookPayload{
		ID:       item.ID,
		Platform: string(conn.Platform),
		Handle:   conn.Handle,
		Topic:    item.Topic,
		Body:     item.Body,
		MediaRef: item.MediaRef,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.PlatformError{Platform: conn.Platform, Cause: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &domain.PlatformError{Platform: conn.Platform, Cause: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &domain.PlatformError{Platform: conn.Platform, Cause: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.PlatformError{Platform: conn.Platform, Cause: fmt.Errorf("webhook returned %s", resp.Status)}
	}
	return nil
}
