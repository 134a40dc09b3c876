// Package memory keeps unmatched messages in process memory. It backs the
// service when no database is configured, and the tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"authmsg/internal/domain"
	"authmsg/internal/domain/entities"
	"authmsg/internal/ports/output"
)

var _ output.UnmatchedRepository = (*UnmatchedRepository)(nil)

type UnmatchedRepository struct {
	mu     sync.RWMutex
	nextID uint
	rows   map[string]*entities.UnmatchedMessage
}

func NewUnmatchedRepository() *UnmatchedRepository {
	return &UnmatchedRepository{
		rows: make(map[string]*entities.UnmatchedMessage),
	}
}

func (r *UnmatchedRepository) Record(ctx context.Context, msg *entities.UnmatchedMessage) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, exists := r.rows[msg.Canonical]
	if !exists {
		r.nextID++
		row = &entities.UnmatchedMessage{
			ID:          r.nextID,
			Canonical:   msg.Canonical,
			FirstSeenAt: msg.FirstSeenAt,
		}
		r.rows[msg.Canonical] = row
	}
	row.Raw = msg.Raw
	row.Locale = msg.Locale
	row.Hits++
	row.LastSeenAt = msg.LastSeenAt

	*msg = *row
	return !exists, nil
}

func (r *UnmatchedRepository) FindByCanonical(ctx context.Context, canonical string) (*entities.UnmatchedMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, exists := r.rows[canonical]
	if !exists {
		return nil, domain.ErrUnmatchedNotFound
	}
	out := *row
	return &out, nil
}

func (r *UnmatchedRepository) List(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error) {
	r.mu.RLock()
	out := make([]entities.UnmatchedMessage, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, *row)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Hits != out[j].Hits {
			return out[i].Hits > out[j].Hits
		}
		if !out[i].LastSeenAt.Equal(out[j].LastSeenAt) {
			return out[i].LastSeenAt.After(out[j].LastSeenAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *UnmatchedRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for canonical, row := range r.rows {
		if row.LastSeenAt.Before(before) {
			delete(r.rows, canonical)
			n++
		}
	}
	return n, nil
}
