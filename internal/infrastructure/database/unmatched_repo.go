package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"authmsg/internal/domain"
	"authmsg/internal/domain/entities"
	"authmsg/internal/ports/output"
)

var _ output.UnmatchedRepository = (*UnmatchedRepository)(nil)

// DBTX is the subset of pgxpool.Pool (and pgx.Tx) the repository needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const unmatchedColumns = `id, canonical, raw, locale, hits, first_seen_at, last_seen_at`

// xmax is zero only on a freshly inserted tuple, which tells an insert
// apart from the conflict update.
const recordUnmatched = `
INSERT INTO unmatched_messages (canonical, raw, locale, hits, first_seen_at, last_seen_at)
VALUES ($1, $2, $3, 1, $4, $4)
ON CONFLICT (canonical) DO UPDATE
SET hits = unmatched_messages.hits + 1,
    raw = EXCLUDED.raw,
    locale = EXCLUDED.locale,
    last_seen_at = EXCLUDED.last_seen_at
RETURNING ` + unmatchedColumns + `, (xmax = 0) AS inserted`

const findUnmatchedByCanonical = `SELECT ` + unmatchedColumns + ` FROM unmatched_messages WHERE canonical = $1`

const listUnmatched = `SELECT ` + unmatchedColumns + ` FROM unmatched_messages
ORDER BY hits DESC, last_seen_at DESC, id ASC
LIMIT $1`

const deleteUnmatchedBefore = `DELETE FROM unmatched_messages WHERE last_seen_at < $1`

// UnmatchedRepository implements output.UnmatchedRepository on PostgreSQL.
type UnmatchedRepository struct {
	db DBTX
}

// NewUnmatchedRepository creates an UnmatchedRepository.
func NewUnmatchedRepository(db DBTX) *UnmatchedRepository {
	return &UnmatchedRepository{db: db}
}

func (r *UnmatchedRepository) Record(ctx context.Context, msg *entities.UnmatchedMessage) (bool, error) {
	seenAt := msg.LastSeenAt
	if seenAt.IsZero() {
		seenAt = time.Now()
	}
	var (
		row      unmatchedRow
		inserted bool
	)
	err := r.db.QueryRow(ctx, recordUnmatched, msg.Canonical, msg.Raw, msg.Locale, timeToPgtypeTimestamptz(seenAt)).
		Scan(&row.ID, &row.Canonical, &row.Raw, &row.Locale, &row.Hits, &row.FirstSeenAt, &row.LastSeenAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("record unmatched: %w", err)
	}
	*msg = unmatchedToDomain(row)
	return inserted, nil
}

func (r *UnmatchedRepository) FindByCanonical(ctx context.Context, canonical string) (*entities.UnmatchedMessage, error) {
	row, err := scanUnmatched(r.db.QueryRow(ctx, findUnmatchedByCanonical, canonical))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnmatchedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get unmatched by canonical: %w", err)
	}
	m := unmatchedToDomain(row)
	return &m, nil
}

func (r *UnmatchedRepository) List(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error) {
	rows, err := r.db.Query(ctx, listUnmatched, limit)
	if err != nil {
		return nil, fmt.Errorf("list unmatched: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.UnmatchedMessage, error) {
		u, err := scanUnmatched(row)
		if err != nil {
			return entities.UnmatchedMessage{}, err
		}
		return unmatchedToDomain(u), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list unmatched: %w", err)
	}
	return out, nil
}

// Prune deletes entries last seen before the given time and reports how
// many were removed.
func (r *UnmatchedRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteUnmatchedBefore, timeToPgtypeTimestamptz(before))
	if err != nil {
		return 0, fmt.Errorf("prune unmatched: %w", err)
	}
	return tag.RowsAffected(), nil
}
