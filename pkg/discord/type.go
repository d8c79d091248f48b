package discord

import (
	"net/http"
	"time"

	"github.com/seolargo/skivori-case/pkg/log"
)

// Config contains configuration for the Discord webhook client.
type Config struct {
	Timeout         time.Duration
	DefaultUsername string
}

// DefaultConfig returns the default webhook client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "skivori-case",
	}
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// webhookPayload is the JSON body Discord expects.
type webhookPayload struct {
	Username string  `json:"username,omitempty"`
	Content  string  `json:"content,omitempty"`
	Embeds   []embed `json:"embeds,omitempty"`
}

type embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"`
}
