package output

import (
	"context"

	"authmsg/internal/domain/entities"
)

// UnmatchedNotifier tells maintainers about messages missing a rule.
type UnmatchedNotifier interface {
	NotifyUnmatched(ctx context.Context, msg entities.UnmatchedMessage) error
	NotifyDigest(ctx context.Context, msgs []entities.UnmatchedMessage) error
}
