package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"authmsg/internal/domain/entities"
)

type fakeUnmatchedUseCase struct {
	digests   atomic.Int32
	prunes    atomic.Int32
	retention atomic.Int64
	digestErr error
}

func (f *fakeUnmatchedUseCase) ListUnmatched(ctx context.Context, limit int) ([]entities.UnmatchedMessage, error) {
	return nil, nil
}

func (f *fakeUnmatchedUseCase) GetUnmatched(ctx context.Context, message string) (*entities.UnmatchedMessage, error) {
	return nil, nil
}

func (f *fakeUnmatchedUseCase) SendDigest(ctx context.Context, limit int) error {
	f.digests.Add(1)
	return f.digestErr
}

func (f *fakeUnmatchedUseCase) PruneUnmatched(ctx context.Context, olderThan time.Duration) (int64, error) {
	f.prunes.Add(1)
	f.retention.Store(int64(olderThan))
	return 1, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDigestScheduler_Run(t *testing.T) {
	uc := &fakeUnmatchedUseCase{digestErr: errors.New("webhook down")}
	d := NewDigestScheduler(uc, 5*time.Millisecond, time.Hour, 10, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return uc.prunes.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, uc.digests.Load(), int32(2))
	assert.Equal(t, int64(time.Hour), uc.retention.Load())
}

func TestDigestScheduler_DisabledReturnsImmediately(t *testing.T) {
	uc := &fakeUnmatchedUseCase{}
	d := NewDigestScheduler(uc, 0, time.Hour, 10, discardLogger())

	done := make(chan struct{})
	go func() {
		d.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled scheduler did not return")
	}
	assert.Zero(t, uc.digests.Load())
}
