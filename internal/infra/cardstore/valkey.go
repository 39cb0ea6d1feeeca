package cardstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"mtgsalty/internal/domain/cards"
)

// ValkeyStore caches cards in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "card"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetCard(ctx context.Context, key string) (*cards.Card, bool, error) {
	cmd := s.client.B().Get().Key(s.cacheKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var card cards.Card
	if err := json.Unmarshal([]byte(payload), &card); err != nil {
		return nil, false, err
	}
	return &card, true, nil
}

func (s *ValkeyStore) SaveCard(ctx context.Context, key string, card *cards.Card, ttl time.Duration) error {
	if card == nil {
		return nil
	}
	payload, err := json.Marshal(card)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.cacheKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) cacheKey(key string) string {
	return s.prefix + ":" + key
}

var _ cards.Store = (*ValkeyStore)(nil)
