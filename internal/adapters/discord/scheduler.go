package discord

import (
	"context"
	"log/slog"
	"time"

	"authmsg/internal/ports/input"
)

// DigestScheduler periodically posts the unmatched-message digest and
// prunes entries older than the retention window.
type DigestScheduler struct {
	unmatched input.UnmatchedUseCase
	interval  time.Duration
	limit     int
	retention time.Duration
	logger    *slog.Logger
}

func NewDigestScheduler(unmatched input.UnmatchedUseCase, interval, retention time.Duration, limit int, logger *slog.Logger) *DigestScheduler {
	return &DigestScheduler{
		unmatched: unmatched,
		interval:  interval,
		limit:     limit,
		retention: retention,
		logger:    logger,
	}
}

// Run blocks until ctx is done. A non-positive interval disables it.
func (d *DigestScheduler) Run(ctx context.Context) {
	if d.interval <= 0 {
		return
	}
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *DigestScheduler) tick(ctx context.Context) {
	if err := d.unmatched.SendDigest(ctx, d.limit); err != nil {
		d.logger.Warn("unmatched digest", "err", err)
	}
	n, err := d.unmatched.PruneUnmatched(ctx, d.retention)
	if err != nil {
		d.logger.Warn("prune unmatched", "err", err)
		return
	}
	if n > 0 {
		d.logger.Info("pruned unmatched messages", "count", n)
	}
}
