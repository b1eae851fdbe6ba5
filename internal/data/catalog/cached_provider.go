package catalog

import (
	"context"
	"fmt"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// CachedProvider wraps another provider with an on-disk snapshot.
//
// In offline mode the snapshot is read first and the wrapped provider is only
// asked when no snapshot exists. Online, the wrapped provider is authoritative:
// every successful load refreshes the snapshot, and a failure is returned
// as is so callers show the error instead of stale plans.
type CachedProvider struct {
	provider     Provider
	cacheManager *CacheManager
	useOffline   bool
}

// NewCachedProvider creates a new cached catalog provider
func NewCachedProvider(provider Provider, cacheManager *CacheManager, useOffline bool) *CachedProvider {
	return &CachedProvider{
		provider:     provider,
		cacheManager: cacheManager,
		useOffline:   useOffline,
	}
}

// Plans returns the catalog from the wrapped provider or the snapshot
func (p *CachedProvider) Plans(ctx context.Context) ([]model.Plan, error) {
	if p.useOffline {
		cache, err := p.cacheManager.LoadCatalog(ctx)
		if err == nil {
			util.LogDebugf("Using cached catalog from %s with %d plans", cache.Source, len(cache.Plans))
			return cache.Plans, nil
		}
		util.LogDebugf("Failed to load cached catalog: %v", err)
		util.LogWarn("No offline catalog snapshot, asking the catalog provider")
	}

	plans, err := p.provider.Plans(ctx)
	if err != nil {
		util.LogWarnf("Catalog provider %s failed: %v", p.provider.Name(), err)
		return nil, err
	}

	if !p.useOffline {
		if err := p.cacheManager.SaveCatalog(ctx, p.provider.Name(), plans); err != nil {
			util.LogWarnf("Failed to update catalog cache: %v", err)
		}
	}

	return plans, nil
}

// Refresh reloads the wrapped provider and stores the result
func (p *CachedProvider) Refresh(ctx context.Context) error {
	if p.useOffline {
		return fmt.Errorf("cannot refresh catalog in offline mode")
	}

	if err := p.provider.Refresh(ctx); err != nil {
		return err
	}

	plans, err := p.provider.Plans(ctx)
	if err != nil {
		return err
	}

	return p.cacheManager.SaveCatalog(ctx, p.provider.Name(), plans)
}

// Name returns the name of this catalog provider
func (p *CachedProvider) Name() string {
	if p.useOffline {
		return fmt.Sprintf("%s-offline", p.provider.Name())
	}
	return fmt.Sprintf("%s-cached", p.provider.Name())
}
