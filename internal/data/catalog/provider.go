package catalog

import (
	"context"
	"errors"

	"github.com/penwyp/go-plan-compare/internal/core/model"
)

// Provider defines the interface for loading the plan catalog
type Provider interface {
	// Plans returns the full catalog; callers must not modify the returned plans
	Plans(ctx context.Context) ([]model.Plan, error)

	// Refresh forces a reload of the catalog (for file and remote providers)
	Refresh(ctx context.Context) error

	// Name returns the name of this catalog provider
	Name() string
}

// ErrCatalogUnavailable is returned when no catalog data can be loaded
var ErrCatalogUnavailable = errors.New("plan catalog unavailable")

// FetchError is returned by the remote provider when the catalog endpoint
// answers with an error envelope. Error returns the server's message as is,
// so it can be shown to the user verbatim.
type FetchError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// errorEnvelope is the body of a failed catalog response
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func clonePlans(plans []model.Plan) []model.Plan {
	out := make([]model.Plan, len(plans))
	copy(out, plans)
	return out
}
