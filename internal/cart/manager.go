package cart

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
)

// Manager hands out one Store per cart session, rehydrating each from the
// persistence adapter exactly once. Sessions key on the guest cookie or the
// member id, so a member's cart follows their login.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	adapter *Adapter
	sfg     singleflight.Group
}

func NewManager(adapter *Adapter) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		adapter: adapter,
	}
}

// Session returns the store for sessionID, creating and rehydrating it on
// first access. Concurrent first accesses for the same session collapse into
// a single rehydration.
func (m *Manager) Session(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	if s, ok := m.stores[sessionID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	v, _, _ := m.sfg.Do(sessionID, func() (interface{}, error) {
		s := NewStore()
		if state, ok := m.adapter.Load(ctx, sessionID); ok {
			s.Load(state)
		}
		s.OnChange(func(next model.CartState) {
			m.adapter.Save(sessionID, next)
		})

		m.mu.Lock()
		m.stores[sessionID] = s
		m.mu.Unlock()
		return s, nil
	})
	return v.(*Store)
}

// Drop forgets a session's in-memory store. The persisted copy stays; a later
// Session call rehydrates from it.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
