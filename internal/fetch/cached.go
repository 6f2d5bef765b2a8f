// Package fetch - cached.go provides in-memory caching for repeat fetches.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh. Job postings and
// company pages change slowly; repeat submissions within a session should not
// re-fetch.
const DefaultCacheTTL = 15 * time.Minute

// CachedFetcher wraps URL fetching with in-memory caching. Results are kept
// for the lifetime of the process only; nothing is persisted.
type CachedFetcher struct {
	options  *Options
	cacheTTL time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// NewCachedFetcher creates a new cached fetcher. A zero ttl uses DefaultCacheTTL.
func NewCachedFetcher(opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:  opts,
		cacheTTL: ttl,
		entries:  make(map[string]cacheEntry),
	}
}

// Fetch retrieves a URL, returning the cached copy when it is still fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	entry, ok := f.entries[urlStr]
	f.mu.Unlock()

	if ok && time.Since(entry.fetchedAt) < f.cacheTTL {
		return &CachedResult{Result: entry.result, FromCache: true}, nil
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.entries[urlStr] = cacheEntry{result: result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops a single URL from the cache.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.entries, urlStr)
	f.mu.Unlock()
}
