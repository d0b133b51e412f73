// Package announce posts demo results to a Discord channel webhook
package announce

import (
	"context"

	"github.com/bwmarrin/discordgo"

	internal "github.com/inferenco/cedra-randomness-demos/internal"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// Username is shown as the webhook author
const Username = "Cedra Randomness"

//go:generate mockgen -destination=mock/mock_announcer.go -package=mockannounce . Announcer

// Announcer publishes a short result message
type Announcer interface {
	Announce(ctx context.Context, message string) error
}

// Noop discards every message
type Noop struct{}

func (Noop) Announce(context.Context, string) error {
	return nil
}

type discord struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// DiscordConfig holds webhook credentials
type DiscordConfig struct {
	WebhookID string
	Token     string
	Session   *discordgo.Session // Optional - a token-less session is created
}

// NewDiscord creates an announcer backed by a channel webhook
func NewDiscord(cfg *DiscordConfig) (Announcer, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.WebhookID == "" {
		return nil, internal.NewMissingParamError("cfg.WebhookID")
	}
	if cfg.Token == "" {
		return nil, internal.NewMissingParamError("cfg.Token")
	}

	session := cfg.Session
	if session == nil {
		// webhooks authenticate with their own token, no bot token needed
		var err error
		session, err = discordgo.New("")
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to create Discord session")
		}
	}

	return &discord{
		session:   session,
		webhookID: cfg.WebhookID,
		token:     cfg.Token,
	}, nil
}

func (d *discord) Announce(ctx context.Context, message string) error {
	if message == "" {
		return nil
	}

	_, err := d.session.WebhookExecute(d.webhookID, d.token, false, &discordgo.WebhookParams{
		Content:  message,
		Username: Username,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to post announcement").
			WithMeta("webhook_id", d.webhookID)
	}

	return nil
}
