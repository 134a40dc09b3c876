package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmsg/internal/domain/entities"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		id      string
		token   string
		wantErr bool
	}{
		{"discord.com", "https://discord.com/api/webhooks/123456/abc-DEF_ghi", "123456", "abc-DEF_ghi", false},
		{"versioned api", "https://discord.com/api/v10/webhooks/42/tok", "42", "tok", false},
		{"surrounding spaces", "  https://discord.com/api/webhooks/1/t  ", "1", "t", false},
		{"non numeric id", "https://discord.com/api/webhooks/abc/tok", "", "", true},
		{"missing token", "https://discord.com/api/webhooks/123", "", "", true},
		{"bad scheme", "ftp://discord.com/api/webhooks/1/t", "", "", true},
		{"empty", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := ParseWebhookURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	assert.Empty(t, FormatTimestamp(time.Time{}, time.UTC))
	at := time.Date(2026, 2, 15, 13, 4, 0, 0, time.UTC)
	assert.Equal(t, "15/02/2026 13:04 UTC", FormatTimestamp(at, nil))
}

func TestBuildUnmatchedEmbed(t *testing.T) {
	msg := entities.UnmatchedMessage{
		Raw:         "Quota exceeded!",
		Canonical:   "quota exceeded",
		Locale:      "fr",
		FirstSeenAt: time.Date(2026, 2, 15, 13, 4, 0, 0, time.UTC),
	}
	embed := BuildUnmatchedEmbed(msg, time.UTC)

	assert.Equal(t, unmatchedTitle, embed.Title)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "`Quota exceeded!`", embed.Fields[0].Value)
	assert.Equal(t, "`quota exceeded`", embed.Fields[1].Value)
	assert.Equal(t, "fr", embed.Fields[2].Value)
	assert.Equal(t, "15/02/2026 13:04 UTC", embed.Fields[3].Value)
}

func TestBuildUnmatchedEmbed_TruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("é", 3000)
	embed := BuildUnmatchedEmbed(entities.UnmatchedMessage{Raw: long, Canonical: long}, time.UTC)
	assert.Len(t, []rune(embed.Fields[0].Value), maxFieldLength)
	assert.True(t, strings.HasSuffix(embed.Fields[0].Value, "…"))
}

func TestBuildDigestEmbed(t *testing.T) {
	msgs := make([]entities.UnmatchedMessage, 0, 30)
	for i := 0; i < 30; i++ {
		msgs = append(msgs, entities.UnmatchedMessage{Canonical: "m", Locale: "en", Hits: int64(30 - i)})
	}
	embed := BuildDigestEmbed(msgs, time.UTC, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	lines := strings.Split(embed.Description, "\n")
	require.Len(t, lines, maxDigestEntries+1)
	assert.Equal(t, "**30×** `m` (en)", lines[0])
	assert.Equal(t, "… and 5 more", lines[len(lines)-1])
	assert.Equal(t, "01/01/2026 00:00 UTC", embed.Footer.Text)
}
