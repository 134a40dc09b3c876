package application

import (
	"context"
	"fmt"
	"time"

	"authmsg/internal/domain"
	"authmsg/internal/domain/entities"
	"authmsg/internal/domain/resolver"
	"authmsg/internal/ports/input"
	"authmsg/internal/ports/output"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

var _ input.UnmatchedUseCase = (*UnmatchedService)(nil)

type UnmatchedService struct {
	repo     output.UnmatchedRepository
	notifier output.UnmatchedNotifier
	now      func() time.Time
}

func NewUnmatchedService(repo output.UnmatchedRepository, notifier output.UnmatchedNotifier) *UnmatchedService {
	return &UnmatchedService{repo: repo, notifier: notifier, now: time.Now}
}

// ListUnmatched returns the most frequent unmatched messages. limit is
// clamped to [1, MaxListLimit]; zero or negative means DefaultListLimit.
func (s *UnmatchedService) ListUnmatched(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error) {
	msgs, err := s.repo.List(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list unmatched: %w", err)
	}
	return msgs, nil
}

// SendDigest reports the most frequent unmatched messages. Nothing is sent
// when there are none.
func (s *UnmatchedService) SendDigest(ctx context.Context, limit int) error {
	if s.notifier == nil {
		return domain.ErrNotifierDisabled
	}
	msgs, err := s.ListUnmatched(ctx, limit)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := s.notifier.NotifyDigest(ctx, msgs); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}

func (s *UnmatchedService) GetUnmatched(ctx context.Context, message string) (*entities.UnmatchedMessage, error) {
	canonical := resolver.Normalize(message)
	if canonical == "" {
		return nil, domain.ErrUnmatchedNotFound
	}
	msg, err := s.repo.FindByCanonical(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("get unmatched: %w", err)
	}
	return msg, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// PruneUnmatched drops entries not seen within olderThan. A non-positive
// duration is a no-op.
func (s *UnmatchedService) PruneUnmatched(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, nil
	}
	n, err := s.repo.Prune(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("prune unmatched: %w", err)
	}
	return n, nil
}
