package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/util"
)

const defaultRequestTimeout = 30 * time.Second

// RemoteProvider fetches the catalog from a catalog server's GET /plans endpoint
type RemoteProvider struct {
	url        string
	httpClient *http.Client

	mu            sync.RWMutex
	plans         []model.Plan
	lastFetchTime time.Time
}

// NewRemoteProvider creates a provider for the given endpoint URL
func NewRemoteProvider(url string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &RemoteProvider{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the endpoint the provider fetches from
func (p *RemoteProvider) URL() string {
	return p.url
}

// Plans returns the catalog, fetching it on first use.
// The catalog is static, so later calls reuse the first successful fetch.
func (p *RemoteProvider) Plans(ctx context.Context) ([]model.Plan, error) {
	p.mu.RLock()
	loaded := !p.lastFetchTime.IsZero()
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

// Refresh fetches the catalog again
func (p *RemoteProvider) Refresh(ctx context.Context) error {
	util.LogDebugf("Fetching catalog from %s", p.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		util.LogDebugf("Failed to fetch catalog: %v", err)
		return fmt.Errorf("failed to fetch plans: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		util.LogDebugf("Unexpected HTTP status code: %d", resp.StatusCode)
		return decodeFetchError(resp.StatusCode, body)
	}

	plans, err := DecodeJSON(body)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.plans = plans
	p.lastFetchTime = time.Now()
	p.mu.Unlock()

	util.LogDebugf("Successfully fetched %d plans from %s", len(plans), p.url)
	return nil
}

// Name returns the name of this catalog provider
func (p *RemoteProvider) Name() string {
	return "remote"
}

func decodeFetchError(status int, body []byte) error {
	var envelope errorEnvelope
	if err := sonic.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return &FetchError{StatusCode: status, Code: envelope.Error, Message: envelope.Message}
	}
	return &FetchError{
		StatusCode: status,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
	}
}
