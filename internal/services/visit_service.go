package services

import (
	"context"
	"time"

	"github.com/tmoeller732/five-star-flame-grill-api/internal/storage"
)

// VisitService backs the welcome-back banner and the promotional countdown.
// Both ride on the same KV storage as the cart; a missing or malformed value
// is just "no data".
type VisitService struct {
	KV  storage.KV
	now func() time.Time
}

func NewVisitService(kv storage.KV) *VisitService {
	return &VisitService{KV: kv, now: time.Now}
}

// WelcomeBack returns the previous visit time for the session, if any, and
// records the current visit.
func (s *VisitService) WelcomeBack(ctx context.Context, sessionID string) (*time.Time, error) {
	key := storage.LastVisitKey(sessionID)

	var last *time.Time
	if raw, err := s.KV.Get(ctx, key); err == nil {
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil {
			last = &t
		}
	}

	if err := s.KV.Set(ctx, key, s.now().Format(time.RFC3339)); err != nil {
		return last, err
	}
	return last, nil
}

const promoDuration = 72 * time.Hour

// PromoEnds returns the countdown end time for the current promotion,
// creating one when none is cached.
func (s *VisitService) PromoEnds(ctx context.Context) (time.Time, error) {
	key := storage.PromoEndsKey()

	if raw, err := s.KV.Get(ctx, key); err == nil {
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil && t.After(s.now()) {
			return t, nil
		}
	}

	ends := s.now().Add(promoDuration)
	if err := s.KV.Set(ctx, key, ends.Format(time.RFC3339)); err != nil {
		return time.Time{}, err
	}
	return ends, nil
}
