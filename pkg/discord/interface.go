package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/seolargo/skivori-case/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook ID and token are required")

// IDiscord defines the interface for the Discord webhook notifier.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New creates a new Discord notifier. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}
