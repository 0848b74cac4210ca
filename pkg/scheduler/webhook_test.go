package scheduler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postpilot/postpilot/pkg/domain"
)

func TestWebhookPublisher_Publish(t *testing.T) {
	var received webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewWebhookPublisher(map[string]string{"linkedin": srv.URL}, 5*time.Second)
	item := &domain.ContentItem{
		ID:        "item-1",
		Platforms: []domain.Platform{domain.PlatformLinkedIn},
		Topic:     "launch",
		Body:      "We are live.",
		MediaRef:  "banner.png",
	}
	conn := &domain.Connection{Platform: domain.PlatformLinkedIn, Connected: true, Handle: "@acme"}

	err := p.Publish(context.Background(), item, conn)
	require.NoError(t, err)

	assert.Equal(t, "item-1", received.ID)
	assert.Equal(t, "linkedin", received.Platform)
	assert.Equal(t, "@acme", received.Handle)
	assert.Equal(t, "launch", received.Topic)
	assert.Equal(t, "We are live.", received.Body)
	assert.Equal(t, "banner.png", received.MediaRef)
}

func TestWebhookPublisher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewWebhookPublisher(map[string]string{"twitter": srv.URL}, 5*time.Second)
	conn := &domain.Connection{Platform: domain.PlatformTwitter, Connected: true}

	err := p.Publish(context.Background(), &domain.ContentItem{ID: "item-1"}, conn)
	require.Error(t, err)

	var perr *domain.PlatformError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domain.PlatformTwitter, perr.Platform)
	assert.Contains(t, err.Error(), "webhook returned")
}

func TestWebhookPublisher_NoWebhookConfigured(t *testing.T) {
	p := NewWebhookPublisher(map[string]string{}, 5*time.Second)
	conn := &domain.Connection{Platform: domain.PlatformEmail, Connected: true}

	err := p.Publish(context.Background(), &domain.ContentItem{ID: "item-1"}, conn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no webhook configured")
}

func TestWebhookPublisher_Unreachable(t *testing.T) {
	p := NewWebhookPublisher(map[string]string{"email": "http://127.0.0.1:1"}, time.Second)
	conn := &domain.Connection{Platform: domain.PlatformEmail, Connected: true}

	err := p.Publish(context.Background(), &domain.ContentItem{ID: "item-1"}, conn)
	require.Error(t, err)

	var perr *domain.PlatformError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domain.PlatformEmail, perr.Platform)
}
