package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failKV errors on every operation, like a full or unreachable backend.
type failKV struct{}

func (failKV) Get(context.Context, string) (string, error) { return "", errors.New("storage down") }
func (failKV) Set(context.Context, string, string) error   { return errors.New("storage down") }
func (failKV) Delete(context.Context, string) error        { return errors.New("storage down") }

func TestAdapterRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, testLogger())

	s := NewStore()
	s.Add(burgerDraft())
	st := s.Add(cheesesteakDraft())

	a.Save("sess-1", st)

	loaded, ok := a.Load(context.Background(), "sess-1")
	require.True(t, ok)
	assert.Equal(t, st.Items, loaded.Items)
	assert.Equal(t, st.TotalCents, loaded.TotalCents)
	assert.Equal(t, st.ItemCount, loaded.ItemCount)
}

func TestAdapterLoadAbsent(t *testing.T) {
	a := NewAdapter(storage.NewMemoryKV(), testLogger())

	st, ok := a.Load(context.Background(), "nobody")
	assert.False(t, ok)
	assert.Empty(t, st.Items)
}

func TestAdapterLoadCorruptEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"items": [`},
		{"items not an array", `{"items": "not-an-array"}`},
		{"items missing", `{"total_cents": 500}`},
		{"wrong top-level type", `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryKV()
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, storage.CartKey("sess-1"), tt.raw))

			a := NewAdapter(kv, testLogger())
			st, ok := a.Load(ctx, "sess-1")
			assert.False(t, ok)
			assert.Empty(t, st.Items)

			// corrupt entry is discarded, not re-parsed forever
			_, err := kv.Get(ctx, storage.CartKey("sess-1"))
			assert.ErrorIs(t, err, storage.ErrNotFound)
		})
	}
}

func TestAdapterSaveFailureIsSwallowed(t *testing.T) {
	a := NewAdapter(failKV{}, testLogger())

	assert.NotPanics(t, func() {
		a.Save("sess-1", model.CartState{Items: []model.LineItem{}})
	})

	st, ok := a.Load(context.Background(), "sess-1")
	assert.False(t, ok)
	assert.Empty(t, st.Items)
}

func TestManagerRehydratesOnce(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, testLogger())
	ctx := context.Background()

	// a prior session left a cart behind
	seed := NewStore()
	seeded := seed.Add(burgerDraft())
	a.Save("sess-1", seeded)

	m := NewManager(a)
	s := m.Session(ctx, "sess-1")
	assert.Equal(t, seeded.TotalCents, s.State().TotalCents)

	// same store handed back, no second rehydration
	again := m.Session(ctx, "sess-1")
	assert.Same(t, s, again)
}

func TestManagerPersistsMutations(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, testLogger())
	ctx := context.Background()

	m := NewManager(a)
	s := m.Session(ctx, "sess-1")
	st := s.Add(cheesesteakDraft())

	// a fresh manager sees the persisted cart
	m2 := NewManager(NewAdapter(kv, testLogger()))
	s2 := m2.Session(ctx, "sess-1")
	assert.Equal(t, st.Items, s2.State().Items)
	assert.Equal(t, st.TotalCents, s2.State().TotalCents)
}

func TestManagerDropForgetsMemoryNotStorage(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := NewAdapter(kv, testLogger())
	ctx := context.Background()

	m := NewManager(a)
	s := m.Session(ctx, "sess-1")
	s.Add(burgerDraft())

	m.Drop("sess-1")
	s2 := m.Session(ctx, "sess-1")
	assert.NotSame(t, s, s2)
	assert.Len(t, s2.State().Items, 1)
}
