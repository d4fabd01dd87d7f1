package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/mprs-garage/repair_shop_app/internal/core/ports/services"
)

type discordWebhookNotifier struct {
	BaseService
	webhookURL string
	client     *http.Client
}

// NewDiscordWebhookNotifier creates the Notifier posting plain-text messages
// to the shop's Discord webhook. An empty URL yields a no-op notifier.
func NewDiscordWebhookNotifier(webhookURL string) portssvc.Notifier {
	return &discordWebhookNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

var _ portssvc.Notifier = (*discordWebhookNotifier)(nil)

func (n *discordWebhookNotifier) Notify(ctx context.Context, content string) error {
	if n.webhookURL == "" {
		n.LogDebug(ctx, "discord webhook not configured, dropping notification")
		return nil
	}

	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post to discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("discord webhook returned %s", resp.Status)
	}
	return nil
}
