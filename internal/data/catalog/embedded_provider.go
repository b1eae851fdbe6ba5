package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-plan-compare/internal/core/model"
)

//go:embed data/plans.json
var embeddedPlans []byte

// EmbeddedProvider serves the reference catalog compiled into the binary
type EmbeddedProvider struct {
	once  sync.Once
	plans []model.Plan
	err   error
}

// NewEmbeddedProvider creates a provider over the built-in catalog
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{}
}

// Plans returns the built-in catalog
func (p *EmbeddedProvider) Plans(ctx context.Context) ([]model.Plan, error) {
	p.once.Do(func() {
		p.plans, p.err = DecodeJSON(embeddedPlans)
	})
	if p.err != nil {
		return nil, p.err
	}
	return clonePlans(p.plans), nil
}

// Refresh is a no-op: the built-in catalog never changes
func (p *EmbeddedProvider) Refresh(ctx context.Context) error {
	return nil
}

// Name returns the name of this catalog provider
func (p *EmbeddedProvider) Name() string {
	return "embedded"
}

// DecodeJSON parses and validates a JSON plan array
func DecodeJSON(data []byte) ([]model.Plan, error) {
	var plans []model.Plan
	if err := sonic.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := model.ValidateCatalog(plans); err != nil {
		return nil, err
	}
	return plans, nil
}
