package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authmsg/internal/domain"
	"authmsg/internal/domain/entities"
	"authmsg/internal/infrastructure/memory"
)

func unmatched(canonical string, at time.Time) *entities.UnmatchedMessage {
	return &entities.UnmatchedMessage{
		Raw:         canonical,
		Canonical:   canonical,
		Locale:      "en",
		FirstSeenAt: at,
		LastSeenAt:  at,
	}
}

func TestUnmatchedRepository_Record(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnmatchedRepository()
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	first := unmatched("quota exceeded", t0)
	firstSeen, err := repo.Record(ctx, first)
	require.NoError(t, err)
	assert.True(t, firstSeen)
	assert.Equal(t, int64(1), first.Hits)
	assert.NotZero(t, first.ID)

	again := unmatched("quota exceeded", t0.Add(time.Hour))
	again.Locale = "fr"
	firstSeen, err = repo.Record(ctx, again)
	require.NoError(t, err)
	assert.False(t, firstSeen)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, int64(2), again.Hits)
	assert.Equal(t, t0, again.FirstSeenAt)
	assert.Equal(t, t0.Add(time.Hour), again.LastSeenAt)

	stored, err := repo.FindByCanonical(ctx, "quota exceeded")
	require.NoError(t, err)
	assert.Equal(t, "fr", stored.Locale)
	assert.Equal(t, int64(2), stored.Hits)
}

func TestUnmatchedRepository_FindByCanonicalMissing(t *testing.T) {
	_, err := memory.NewUnmatchedRepository().FindByCanonical(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUnmatchedNotFound)
}

func TestUnmatchedRepository_ListOrdersByHits(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnmatchedRepository()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, canonical := range []string{"a", "b", "b", "c", "c", "c"} {
		_, err := repo.Record(ctx, unmatched(canonical, t0.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].Canonical, all[1].Canonical, all[2].Canonical})

	top, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "c", top[0].Canonical)
}

func TestUnmatchedRepository_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnmatchedRepository()

	var wg sync.WaitGroup
	firsts := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			first, err := repo.Record(ctx, unmatched("same", time.Now()))
			assert.NoError(t, err)
			firsts <- first
		}()
	}
	wg.Wait()
	close(firsts)

	count := 0
	for f := range firsts {
		if f {
			count++
		}
	}
	assert.Equal(t, 1, count)

	stored, err := repo.FindByCanonical(ctx, "same")
	require.NoError(t, err)
	assert.Equal(t, int64(50), stored.Hits)
}

func TestUnmatchedRepository_Prune(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUnmatchedRepository()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Record(ctx, unmatched("old", t0))
	require.NoError(t, err)
	_, err = repo.Record(ctx, unmatched("recent", t0.Add(48*time.Hour)))
	require.NoError(t, err)

	n, err := repo.Prune(ctx, t0.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindByCanonical(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrUnmatchedNotFound)
	_, err = repo.FindByCanonical(ctx, "recent")
	assert.NoError(t, err)
}
