package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	colorError   = 0xE74C3C
	colorWarning = 0xF39C12
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// SendMessage posts a plain-text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Content:  content,
	})
}

// SendError posts an error embed. The wrapped error is appended to the description.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	if err != nil {
		description = fmt.Sprintf("%s\n```%v```", description, err)
	}
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []embed{{
			Title:       title,
			Description: description,
			Color:       colorError,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// ReportBug posts an unexpected-failure report, e.g. from the panic recovery middleware.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.post(ctx, webhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []embed{{
			Title:       "Bug report",
			Description: message,
			Color:       colorWarning,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// Close releases client resources. Present for interface symmetry with other pkg clients.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord: webhook returned status %d", resp.StatusCode)
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
	}
	return nil
}
