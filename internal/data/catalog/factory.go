package catalog

import (
	"fmt"
	"time"

	"github.com/penwyp/go-plan-compare/internal/util"
)

// Catalog source names
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceRemote   = "remote"
)

// SourceConfig selects where the catalog comes from
type SourceConfig struct {
	Source      string        `json:"source" yaml:"source"`
	Path        string        `json:"path" yaml:"path"`
	URL         string        `json:"url" yaml:"url"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	OfflineMode bool          `json:"offline" yaml:"offline"`
}

// CreateProvider creates a catalog provider based on configuration
func CreateProvider(cfg *SourceConfig, cacheDir string) (Provider, error) {
	var baseProvider Provider

	switch cfg.Source {
	case SourceEmbedded, "":
		baseProvider = NewEmbeddedProvider()
	case SourceFile:
		if cfg.Path == "" {
			return nil, fmt.Errorf("catalog source 'file' requires a path")
		}
		baseProvider = NewFileProvider(cfg.Path)
	case SourceRemote:
		if cfg.URL == "" {
			return nil, fmt.Errorf("catalog source 'remote' requires a url")
		}
		baseProvider = NewRemoteProvider(cfg.URL, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown catalog source: %s", cfg.Source)
	}

	// Remote catalogs and offline mode get an on-disk snapshot
	if cfg.OfflineMode || cfg.Source == SourceRemote {
		util.LogDebugf("Enabling catalog cache: offline_mode=%t, source=%s, cache_dir=%s",
			cfg.OfflineMode, baseProvider.Name(), cacheDir)

		cacheManager, err := NewCacheManager(cacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache manager: %w", err)
		}
		return NewCachedProvider(baseProvider, cacheManager, cfg.OfflineMode), nil
	}

	return baseProvider, nil
}
