package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

const cacheFileName = "catalog.json"

// CacheManager handles caching of catalog data for offline use
type CacheManager struct {
	mu        sync.RWMutex
	cacheFile string
}

// CatalogCache represents the cached catalog data
type CatalogCache struct {
	Source    string       `json:"source"`
	UpdatedAt time.Time    `json:"updated_at"`
	Plans     []model.Plan `json:"plans"`
}

// NewCacheManager creates a cache manager storing its snapshot in baseDir
func NewCacheManager(baseDir string) (*CacheManager, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &CacheManager{
		cacheFile: filepath.Join(baseDir, cacheFileName),
	}, nil
}

// Path returns the cache file location
func (m *CacheManager) Path() string {
	return m.cacheFile
}

// SaveCatalog saves catalog data to cache
func (m *CacheManager) SaveCatalog(ctx context.Context, source string, plans []model.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	util.LogDebugf("Saving %s catalog to %s (%d plans)", source, m.cacheFile, len(plans))

	cache := CatalogCache{
		Source:    source,
		UpdatedAt: time.Now(),
		Plans:     plans,
	}

	data, err := sonic.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog cache: %w", err)
	}

	// Write to temporary file first
	tmpFile := m.cacheFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	if err := os.Rename(tmpFile, m.cacheFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	return nil
}

// LoadCatalog loads catalog data from cache
func (m *CacheManager) LoadCatalog(ctx context.Context) (*CatalogCache, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no cached catalog at %s", ErrCatalogUnavailable, m.cacheFile)
		}
		return nil, fmt.Errorf("failed to read cache file %s: %w", m.cacheFile, err)
	}

	var cache CatalogCache
	if err := sonic.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog cache: %w", err)
	}
	if err := model.ValidateCatalog(cache.Plans); err != nil {
		return nil, fmt.Errorf("cached catalog is invalid: %w", err)
	}

	util.LogDebugf("Loaded cached catalog: source=%s, plans=%d, updated_at=%s",
		cache.Source, len(cache.Plans), cache.UpdatedAt.Format("2006-01-02 15:04:05"))

	return &cache, nil
}

// HasCache checks if cached catalog data exists
func (m *CacheManager) HasCache() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.cacheFile)
	return err == nil
}

// ClearCache removes the cached catalog
func (m *CacheManager) ClearCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.cacheFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}
