package input

import (
	"context"
	"time"

	"authmsg/internal/domain/entities"
)

// Localized is a resolved message in the locale that served it.
type Localized struct {
	Locale  string
	Message string
	Matched bool
}

// LocalizedError is a backend error body resolved for one locale.
type LocalizedError struct {
	Locale  string
	Message string
	Errors  map[string]string
}

type LocalizeUseCase interface {
	Localize(ctx context.Context, locale, raw string) Localized
	LocalizeFields(ctx context.Context, locale string, fields map[string][]string) (string, map[string]string)
	LocalizeAPIError(ctx context.Context, locale string, body []byte) (LocalizedError, error)
	NegotiateLocale(preferences ...string) string
}

type UnmatchedUseCase interface {
	ListUnmatched(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error)
	// GetUnmatched finds the entry recorded for message, in raw or canonical form.
	GetUnmatched(ctx context.Context, message string) (*entities.UnmatchedMessage, error)
	SendDigest(ctx context.Context, limit int) error
	PruneUnmatched(ctx context.Context, olderThan time.Duration) (int64, error)
}
