package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"authmsg/internal/domain/entities"
	"authmsg/internal/ports/output"
	pkgdiscord "authmsg/pkg/discord"
)

var _ output.UnmatchedNotifier = (*Notifier)(nil)

// Notifier posts unmatched-message reports to a Discord channel webhook.
type Notifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
	loc       *time.Location
	now       func() time.Time
}

// NewNotifier creates a Notifier for the given webhook URL. No gateway
// connection is opened; webhooks only need the REST client.
func NewNotifier(webhookURL string, loc *time.Location) (*Notifier, error) {
	id, token, err := pkgdiscord.ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.UserAgent = "authmsg (https://github.com/bwmarrin/discordgo)"
	return &Notifier{
		session:   s,
		webhookID: id,
		token:     token,
		loc:       loc,
		now:       time.Now,
	}, nil
}

func (n *Notifier) NotifyUnmatched(ctx context.Context, msg entities.UnmatchedMessage) error {
	return n.execute(ctx, pkgdiscord.BuildUnmatchedEmbed(msg, n.loc))
}

func (n *Notifier) NotifyDigest(ctx context.Context, msgs []entities.UnmatchedMessage) error {
	return n.execute(ctx, pkgdiscord.BuildDigestEmbed(msgs, n.loc, n.now()))
}

func (n *Notifier) execute(ctx context.Context, embed *discordgo.MessageEmbed) error {
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Username: "authmsg",
		Embeds:   []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord webhook: %w", err)
	}
	return nil
}
