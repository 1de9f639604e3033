package memory

import (
	"context"
	"sort"

	"github.com/aretw0/wilayah/pkg/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity bounds the number of sessions an in-memory store keeps.
const DefaultCapacity = 4096

// Store implements ports.SelectionStore in memory.
// It keeps at most Capacity sessions and evicts the least recently used one beyond that.
// Safe for concurrent use.
type Store struct {
	cache *lru.Cache[string, domain.Selection]
}

// Option configures a Store.
type Option func(*storeConfig)

type storeConfig struct {
	capacity int
}

// WithCapacity sets the maximum number of sessions kept.
func WithCapacity(n int) Option {
	return func(c *storeConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	cfg := storeConfig{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	// lru.New only fails for a non-positive size, which WithCapacity rules out.
	cache, _ := lru.New[string, domain.Selection](cfg.capacity)
	return &Store{cache: cache}
}

// Save persists the selection in memory. Selections are values, so no copy is needed.
func (s *Store) Save(ctx context.Context, sessionID string, sel domain.Selection) error {
	s.cache.Add(sessionID, sel)
	return nil
}

// Load retrieves the selection from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (domain.Selection, error) {
	sel, ok := s.cache.Get(sessionID)
	if !ok {
		return domain.Selection{}, domain.ErrSessionNotFound
	}
	return sel, nil
}

// Delete removes the selection.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.cache.Remove(sessionID)
	return nil
}

// List returns active sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	sessions := s.cache.Keys()
	sort.Strings(sessions)
	return sessions, nil
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
