package output

import (
	"context"
	"time"

	"authmsg/internal/domain/entities"
)

// UnmatchedRepository stores backend messages that no rule recognized.
type UnmatchedRepository interface {
	// Record inserts msg or bumps the hit count of the row sharing its
	// canonical key, then fills msg with the stored ID, hit count and
	// timestamps. firstSeen is true when a new row was created.
	Record(ctx context.Context, msg *entities.UnmatchedMessage) (firstSeen bool, err error)
	FindByCanonical(ctx context.Context, canonical string) (*entities.UnmatchedMessage, error)
	// List returns up to limit entries, most hits first.
	List(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error)
	// Prune deletes entries last seen before the given time.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
