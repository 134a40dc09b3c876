package database

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"authmsg/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

// unmatchedRow mirrors the unmatched_messages table.
type unmatchedRow struct {
	ID          int64
	Canonical   string
	Raw         string
	Locale      string
	Hits        int64
	FirstSeenAt pgtype.Timestamptz
	LastSeenAt  pgtype.Timestamptz
}

func scanUnmatched(row pgx.Row) (unmatchedRow, error) {
	var r unmatchedRow
	err := row.Scan(&r.ID, &r.Canonical, &r.Raw, &r.Locale, &r.Hits, &r.FirstSeenAt, &r.LastSeenAt)
	return r, err
}

func unmatchedToDomain(r unmatchedRow) entities.UnmatchedMessage {
	return entities.UnmatchedMessage{
		ID:          uint(r.ID),
		Raw:         r.Raw,
		Canonical:   r.Canonical,
		Locale:      r.Locale,
		Hits:        r.Hits,
		FirstSeenAt: pgtypeTimestamptzToTime(r.FirstSeenAt),
		LastSeenAt:  pgtypeTimestamptzToTime(r.LastSeenAt),
	}
}
