package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
	"gopkg.in/yaml.v3"
)

// FileProvider loads the catalog from a JSON or YAML file on disk
type FileProvider struct {
	path string

	mu     sync.RWMutex
	plans  []model.Plan
	loaded bool
}

// NewFileProvider creates a provider reading path; the format follows the extension
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Path returns the catalog file path
func (p *FileProvider) Path() string {
	return p.path
}

// Plans returns the catalog, loading the file on first use
func (p *FileProvider) Plans(ctx context.Context) ([]model.Plan, error) {
	p.mu.RLock()
	loaded := p.loaded
	p.mu.RUnlock()

	if !loaded {
		if err := p.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return clonePlans(p.plans), nil
}

// Refresh rereads the file. On failure the previously loaded plans are kept.
func (p *FileProvider) Refresh(ctx context.Context) error {
	util.LogDebugf("Loading catalog from %s", p.path)

	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", p.path, err)
	}

	plans, err := DecodeFile(p.path, data)
	if err != nil {
		return fmt.Errorf("failed to load catalog file %s: %w", p.path, err)
	}

	p.mu.Lock()
	p.plans = plans
	p.loaded = true
	p.mu.Unlock()

	util.LogDebugf("Loaded %d plans from %s", len(plans), p.path)
	return nil
}

// Name returns the name of this catalog provider
func (p *FileProvider) Name() string {
	return "file"
}

// DecodeFile parses catalog data according to the file extension
func DecodeFile(path string, data []byte) ([]model.Plan, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// DecodeYAML parses and validates a YAML plan list
func DecodeYAML(data []byte) ([]model.Plan, error) {
	var plans []model.Plan
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := model.ValidateCatalog(plans); err != nil {
		return nil, err
	}
	return plans, nil
}
