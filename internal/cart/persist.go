package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/model"
	"github.com/tmoeller732/five-star-flame-grill-api/internal/storage"
)

// Adapter mirrors CartState into durable storage and rehydrates it at session
// start. It only observes the store; it never builds line items of its own.
type Adapter struct {
	kv  storage.KV
	log *slog.Logger
}

func NewAdapter(kv storage.KV, log *slog.Logger) *Adapter {
	return &Adapter{kv: kv, log: log}
}

// Load reads a previously persisted cart. Absent keys, invalid JSON, or a
// payload without an items array all yield (empty, false): corrupted entries
// are discarded, never surfaced as errors. A corrupt entry is also deleted so
// it is not re-parsed on every visit.
func (a *Adapter) Load(ctx context.Context, sessionID string) (model.CartState, bool) {
	raw, err := a.kv.Get(ctx, storage.CartKey(sessionID))
	if err != nil {
		if err != storage.ErrNotFound {
			a.log.Warn("cart load failed, starting empty", "session", sessionID, "error", err)
		}
		return model.CartState{Items: []model.LineItem{}}, false
	}

	var state model.CartState
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state.Items == nil {
		a.log.Warn("discarding corrupt persisted cart", "session", sessionID)
		if delErr := a.kv.Delete(ctx, storage.CartKey(sessionID)); delErr != nil {
			a.log.Warn("corrupt cart delete failed", "session", sessionID, "error", delErr)
		}
		return model.CartState{Items: []model.LineItem{}}, false
	}
	return state, true
}

// Save serializes the full state and overwrites the session's cart key. The
// write is best-effort: a storage failure is logged, never returned to the
// mutation that triggered it.
func (a *Adapter) Save(sessionID string, state model.CartState) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	b, err := json.Marshal(state)
	if err != nil {
		a.log.Warn("cart marshal failed", "session", sessionID, "error", err)
		return
	}
	if err := a.kv.Set(ctx, storage.CartKey(sessionID), string(b)); err != nil {
		a.log.Warn("cart persist failed", "session", sessionID, "error", err)
	}
}
