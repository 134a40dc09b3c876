package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"authmsg/internal/domain/entities"
)

const (
	embedColor       = 0xED4245
	unmatchedTitle   = "Unrecognized backend message"
	digestTitle      = "Unrecognized backend messages"
	maxFieldLength   = 1024
	maxDigestEntries = 25
)

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// BuildUnmatchedEmbed describes one message that no rule recognized.
func BuildUnmatchedEmbed(msg entities.UnmatchedMessage, loc *time.Location) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       unmatchedTitle,
		Description: "No localization rule matched this message; it was shown to users as is.",
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Raw", Value: truncate("`"+msg.Raw+"`", maxFieldLength)},
			{Name: "Canonical key", Value: truncate("`"+msg.Canonical+"`", maxFieldLength)},
			{Name: "Locale", Value: msg.Locale, Inline: true},
			{Name: "First seen", Value: FormatTimestamp(msg.FirstSeenAt, loc), Inline: true},
		},
	}
}

// BuildDigestEmbed lists the most frequent unmatched messages, one line
// each. Discord caps embeds, so only the first entries are shown.
func BuildDigestEmbed(msgs []entities.UnmatchedMessage, loc *time.Location, now time.Time) *discordgo.MessageEmbed {
	var b strings.Builder
	shown := msgs
	if len(shown) > maxDigestEntries {
		shown = shown[:maxDigestEntries]
	}
	for _, m := range shown {
		b.WriteString(fmt.Sprintf("**%d×** `%s` (%s)\n", m.Hits, truncate(m.Canonical, 120), m.Locale))
	}
	if rest := len(msgs) - len(shown); rest > 0 {
		b.WriteString(fmt.Sprintf("… and %d more", rest))
	}
	return &discordgo.MessageEmbed{
		Title:       digestTitle,
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       embedColor,
		Footer:      &discordgo.MessageEmbedFooter{Text: FormatTimestamp(now, loc)},
	}
}
