package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmsg/internal/domain/entities"
)

type capturedRequest struct {
	path string
	body discordgo.WebhookParams
}

// withWebhookServer points discordgo's webhook endpoint at a local server.
func withWebhookServer(t *testing.T, status int) <-chan capturedRequest {
	t.Helper()
	reqs := make(chan capturedRequest, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var params discordgo.WebhookParams
		_ = json.Unmarshal(data, &params)
		reqs <- capturedRequest{path: r.URL.Path, body: params}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	orig := discordgo.EndpointWebhookToken
	discordgo.EndpointWebhookToken = func(wID, token string) string {
		return srv.URL + "/webhooks/" + wID + "/" + token
	}
	t.Cleanup(func() { discordgo.EndpointWebhookToken = orig })
	return reqs
}

func TestNewNotifier_InvalidURL(t *testing.T) {
	_, err := NewNotifier("not a webhook", time.UTC)
	assert.Error(t, err)
}

func TestNotifier_NotifyUnmatched(t *testing.T) {
	reqs := withWebhookServer(t, http.StatusNoContent)
	n, err := NewNotifier("https://discord.com/api/webhooks/123/secret", time.UTC)
	require.NoError(t, err)

	err = n.NotifyUnmatched(context.Background(), entities.UnmatchedMessage{
		Raw: "Quota exceeded", Canonical: "quota exceeded", Locale: "en",
	})
	require.NoError(t, err)

	req := <-reqs
	assert.Equal(t, "/webhooks/123/secret", req.path)
	assert.Equal(t, "authmsg", req.body.Username)
	require.Len(t, req.body.Embeds, 1)
	assert.Equal(t, "Unrecognized backend message", req.body.Embeds[0].Title)
}

func TestNotifier_NotifyDigest(t *testing.T) {
	reqs := withWebhookServer(t, http.StatusNoContent)
	n, err := NewNotifier("https://discord.com/api/webhooks/123/secret", time.UTC)
	require.NoError(t, err)
	n.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	err = n.NotifyDigest(context.Background(), []entities.UnmatchedMessage{
		{Canonical: "quota exceeded", Locale: "en", Hits: 4},
	})
	require.NoError(t, err)

	req := <-reqs
	require.Len(t, req.body.Embeds, 1)
	assert.Equal(t, "**4×** `quota exceeded` (en)", req.body.Embeds[0].Description)
}

func TestNotifier_WebhookFailure(t *testing.T) {
	withWebhookServer(t, http.StatusNotFound)
	n, err := NewNotifier("https://discord.com/api/webhooks/123/secret", time.UTC)
	require.NoError(t, err)

	err = n.NotifyUnmatched(context.Background(), entities.UnmatchedMessage{Canonical: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discord webhook")
}
