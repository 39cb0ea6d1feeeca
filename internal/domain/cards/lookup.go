package cards

import (
	"context"
	"log/slog"
	"time"
)

// Lookup resolves card records from the card database. Name and ID lookups
// treat "not found" as a nil card with a nil error; only transport level or
// unexpected upstream failures surface as errors.
type Lookup interface {
	CardByName(ctx context.Context, name string) (*Card, error)
	CardByID(ctx context.Context, id string) (*Card, error)
}

// Searcher runs commander-scoped full text searches.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Card, error)
}

// Store caches resolved cards keyed by lookup key. Implementations live in
// internal/infra/cardstore.
type Store interface {
	GetCard(ctx context.Context, key string) (*Card, bool, error)
	SaveCard(ctx context.Context, key string, card *Card, ttl time.Duration) error
}

// CachedLookup decorates a Lookup with a read-through card cache. Cache
// failures degrade to a direct lookup; negative results are not cached so a
// card released after a miss resolves on the next request.
type CachedLookup struct {
	next   Lookup
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedLookup wraps next with the given store.
func NewCachedLookup(next Lookup, store Store, ttl time.Duration, logger *slog.Logger) *CachedLookup {
	return &CachedLookup{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "cards.cached_lookup"),
	}
}

func (l *CachedLookup) CardByName(ctx context.Context, name string) (*Card, error) {
	return l.lookup(ctx, "name:"+name, func() (*Card, error) {
		return l.next.CardByName(ctx, name)
	})
}

func (l *CachedLookup) CardByID(ctx context.Context, id string) (*Card, error) {
	return l.lookup(ctx, "id:"+id, func() (*Card, error) {
		return l.next.CardByID(ctx, id)
	})
}

func (l *CachedLookup) lookup(ctx context.Context, key string, fetch func() (*Card, error)) (*Card, error) {
	if cached, ok, err := l.store.GetCard(ctx, key); err != nil {
		l.logger.Warn("card cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	card, err := fetch()
	if err != nil || card == nil {
		return card, err
	}
	if err := l.store.SaveCard(ctx, key, card, l.ttl); err != nil {
		l.logger.Warn("card cache write failed", "key", key, "error", err)
	}
	return card, nil
}

var _ Lookup = (*CachedLookup)(nil)
