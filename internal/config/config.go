package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	pkgdiscord "authmsg/pkg/discord"
)

type Config struct {
	DefaultLocale      string
	HTTPAddr           string
	DatabaseURL        string
	MigrationsPath     string
	DiscordWebhookURL  string
	DigestInterval     time.Duration
	DigestLimit        int
	UnmatchedRetention time.Duration
	Timezone           string
	LogLevel           string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		DefaultLocale:     getEnv("DEFAULT_LOCALE", "en"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    os.Getenv("MIGRATIONS_PATH"),
		DiscordWebhookURL: os.Getenv("DISCORD_WEBHOOK_URL"),
		Timezone:          getEnv("TIMEZONE", "Europe/Paris"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DigestLimit:       20,
	}

	var err error
	if cfg.DigestInterval, err = parseDuration("DIGEST_INTERVAL", "24h"); err != nil {
		return nil, err
	}
	if cfg.UnmatchedRetention, err = parseDuration("UNMATCHED_RETENTION", "720h"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s invalid (%q): %w", key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: %s must not be negative", key)
	}
	return d, nil
}

// validate applies the configuration rules.
func (c *Config) validate() error {
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR is required")
	}

	// An empty DATABASE_URL keeps unmatched messages in memory.
	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	if c.DiscordWebhookURL != "" {
		if _, _, err := pkgdiscord.ParseWebhookURL(c.DiscordWebhookURL); err != nil {
			return fmt.Errorf("config: DISCORD_WEBHOOK_URL invalid: %w", err)
		}
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: TIMEZONE invalid (%q): %w", c.Timezone, err)
	}

	return nil
}
