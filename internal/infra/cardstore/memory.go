package cardstore

import (
	"context"
	"sync"
	"time"

	"mtgsalty/internal/domain/cards"
)

type memoryRecord struct {
	card      cards.Card
	expiresAt time.Time
}

// MemoryStore is an in-memory card cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

// GetCard implements cards.Store.
func (s *MemoryStore) GetCard(_ context.Context, key string) (*cards.Card, bool, error) {
	s.mu.RLock()
	record, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.records, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	card := record.card
	return &card, true, nil
}

// SaveCard caches the card with optional TTL.
func (s *MemoryStore) SaveCard(_ context.Context, key string, card *cards.Card, ttl time.Duration) error {
	if card == nil {
		return nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.records[key] = memoryRecord{card: *card, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ cards.Store = (*MemoryStore)(nil)
