package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// Store holds the current catalog snapshot served to readers.
// A snapshot is replaced as a whole; a failed load keeps the previous one.
type Store struct {
	provider Provider

	mu       sync.RWMutex
	plans    []model.Plan
	loaded   bool
	loadedAt time.Time
}

// NewStore creates a store backed by provider
func NewStore(provider Provider) *Store {
	return &Store{provider: provider}
}

// Provider returns the backing provider
func (s *Store) Provider() Provider {
	return s.provider
}

// Load reads the catalog from the provider into a new snapshot
func (s *Store) Load(ctx context.Context) error {
	plans, err := s.provider.Plans(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	s.swap(plans)
	return nil
}

// Reload refreshes the provider and swaps in the result
func (s *Store) Reload(ctx context.Context) error {
	if err := s.provider.Refresh(ctx); err != nil {
		util.LogWarnf("Catalog reload from %s failed, keeping previous snapshot: %v", s.provider.Name(), err)
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return s.Load(ctx)
}

func (s *Store) swap(plans []model.Plan) {
	s.mu.Lock()
	s.plans = clonePlans(plans)
	s.loaded = true
	s.loadedAt = time.Now()
	s.mu.Unlock()

	util.LogInfof("Catalog loaded from %s: %d plans", s.provider.Name(), len(plans))
}

// Snapshot returns a copy of the current catalog.
// ErrCatalogUnavailable is returned until the first successful load.
func (s *Store) Snapshot() ([]model.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrCatalogUnavailable
	}
	return clonePlans(s.plans), nil
}

// LoadedAt returns when the current snapshot was taken
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
