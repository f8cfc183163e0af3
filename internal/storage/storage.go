package storage

import (
	"context"
	"errors"
	"fmt"
)

// KV is the durable key-value storage behind the cart persistence adapter and
// the visit/promo features. Values are opaque strings; a missing key is
// reported as ErrNotFound, never as corrupt data.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")

// Key layout, one browser/client session per cart key.

func CartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func LastVisitKey(sessionID string) string {
	return fmt.Sprintf("visit:%s", sessionID)
}

func PromoEndsKey() string {
	return "promo:countdown_ends"
}
