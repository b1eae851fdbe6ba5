package browse

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"github.com/penwyp/go-plan-compare/internal/util"
)

// FetchResult is the outcome of one catalog fetch
type FetchResult struct {
	Generation uint64
	Plans      []model.Plan
	Err        error
}

// Fetcher runs catalog fetches in the background. Only the result of the
// latest fetch is accepted, and nothing is delivered once the context passed
// to Start is done.
type Fetcher struct {
	source  CatalogSource
	timeout time.Duration
	results chan FetchResult

	mu         sync.Mutex
	generation uint64
	wg         sync.WaitGroup
}

// NewFetcher creates a fetcher for source
func NewFetcher(source CatalogSource, timeout time.Duration) *Fetcher {
	return &Fetcher{
		source:  source,
		timeout: timeout,
		results: make(chan FetchResult, 1),
	}
}

// Start launches a fetch and returns its generation. With refresh set the
// source reloads before the plans are read.
func (f *Fetcher) Start(ctx context.Context, refresh bool) uint64 {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()

		var res FetchResult
		res.Generation = gen
		if refresh {
			res.Err = f.source.Refresh(fetchCtx)
		}
		if res.Err == nil {
			res.Plans, res.Err = f.source.Plans(fetchCtx)
		}

		if ctx.Err() != nil {
			util.LogDebugf("Dropping catalog fetch %d after teardown", gen)
			return
		}
		select {
		case f.results <- res:
		case <-ctx.Done():
			util.LogDebugf("Dropping catalog fetch %d after teardown", gen)
		}
	}()
	return gen
}

// Results delivers finished fetches
func (f *Fetcher) Results() <-chan FetchResult {
	return f.results
}

// Accept reports whether a result belongs to the latest fetch
func (f *Fetcher) Accept(res FetchResult) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return res.Generation == f.generation
}

// Wait blocks until every started fetch has finished or been dropped
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

// ErrorMessage turns a fetch error into the text shown to the user. A server
// error envelope's message is shown verbatim.
func ErrorMessage(err error) string {
	var fetchErr *catalog.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return err.Error()
}
