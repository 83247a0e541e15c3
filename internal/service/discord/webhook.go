package discord

import (
	"context"
	"fmt"
	"time"

	"CryptoProphet/internal/domain/service"
	xhttp "CryptoProphet/pkg/http"
)

// Webhook posts narratives to a Discord channel webhook under a fixed
// display name.
type Webhook struct {
	url      string
	username string
	client   *xhttp.Client
}

// New creates a Discord webhook notifier.
func New(webhookURL, username string, timeout time.Duration) *Webhook {
	return &Webhook{
		url:      webhookURL,
		username: username,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

type webhookMessage struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Send posts text as a chat message. No retries; the caller decides what a
// failed delivery means.
func (w *Webhook) Send(ctx context.Context, text string) error {
	if w.url == "" {
		return fmt.Errorf("discord webhook URL is not configured")
	}

	err := w.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    w.url,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: webhookMessage{Content: text, Username: w.username},
	}, nil)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	return nil
}

var _ service.Notifier = (*Webhook)(nil)
