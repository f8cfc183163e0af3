package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/storage"
)

func TestWelcomeBackFirstVisit(t *testing.T) {
	svc := NewVisitService(storage.NewMemoryKV())
	visit := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return visit }
	ctx := context.Background()

	last, err := svc.WelcomeBack(ctx, "guest:abc")
	require.NoError(t, err)
	assert.Nil(t, last)

	// the visit was recorded
	raw, err := svc.KV.Get(ctx, storage.LastVisitKey("guest:abc"))
	require.NoError(t, err)
	assert.Equal(t, visit.Format(time.RFC3339), raw)
}

func TestWelcomeBackReturningVisit(t *testing.T) {
	svc := NewVisitService(storage.NewMemoryKV())
	ctx := context.Background()

	first := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return first }
	_, err := svc.WelcomeBack(ctx, "guest:abc")
	require.NoError(t, err)

	second := first.Add(4 * 24 * time.Hour)
	svc.now = func() time.Time { return second }
	last, err := svc.WelcomeBack(ctx, "guest:abc")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Equal(first))

	// sessions do not see each other's visits
	other, err := svc.WelcomeBack(ctx, "guest:xyz")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestWelcomeBackMalformedValue(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, storage.LastVisitKey("guest:abc"), "not a timestamp"))

	svc := NewVisitService(kv)
	last, err := svc.WelcomeBack(ctx, "guest:abc")
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestPromoEndsCreatesCountdown(t *testing.T) {
	svc := NewVisitService(storage.NewMemoryKV())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ends, err := svc.PromoEnds(context.Background())
	require.NoError(t, err)
	assert.True(t, ends.Equal(now.Add(72*time.Hour)))
}

func TestPromoEndsIsStableWhileRunning(t *testing.T) {
	svc := NewVisitService(storage.NewMemoryKV())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := svc.PromoEnds(ctx)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(24 * time.Hour) }
	second, err := svc.PromoEnds(ctx)
	require.NoError(t, err)
	assert.True(t, second.Equal(first))
}

func TestPromoEndsRestartsAfterExpiry(t *testing.T) {
	svc := NewVisitService(storage.NewMemoryKV())
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := svc.PromoEnds(ctx)
	require.NoError(t, err)

	later := now.Add(100 * time.Hour)
	svc.now = func() time.Time { return later }
	second, err := svc.PromoEnds(ctx)
	require.NoError(t, err)
	assert.True(t, second.After(first))
	assert.True(t, second.Equal(later.Add(72*time.Hour)))
}
