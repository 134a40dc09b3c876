package discord

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseWebhookURL extracts the webhook ID and token from a Discord webhook
// URL such as https://discord.com/api/webhooks/<id>/<token>.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("webhook url: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", "", fmt.Errorf("webhook url: unsupported scheme %q", u.Scheme)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] != "webhooks" {
			continue
		}
		id, token = parts[i+1], parts[i+2]
		for _, r := range id {
			if r < '0' || r > '9' {
				return "", "", fmt.Errorf("webhook url: id must be numeric")
			}
		}
		if id == "" || token == "" {
			break
		}
		return id, token, nil
	}
	return "", "", fmt.Errorf("webhook url: expected .../webhooks/<id>/<token>")
}
