package webapi

import (
	"context"
	"sync"
	"time"

	"github.com/promptsweep/sweepctl/internal/litellm"
)

// ModelSource lists the chat models available for sweeps.
type ModelSource interface {
	// FetchModels returns the model listing. apiKey overrides the
	// source's configured key for this call when nonempty.
	FetchModels(ctx context.Context, apiKey string, timeout time.Duration) litellm.Result
}

// defaultCacheTTL keeps repeated page loads from hammering the proxy while
// still picking up model changes within a few seconds.
const defaultCacheTTL = 30 * time.Second

// CachedSource wraps a ModelSource and caches successful listings.
// Failed listings and per-request key overrides bypass the cache.
type CachedSource struct {
	src ModelSource
	ttl time.Duration

	mu      sync.RWMutex
	cached  litellm.Result
	fetched time.Time
}

// NewCachedSource wraps src with a TTL cache. A non-positive ttl uses the
// default.
func NewCachedSource(src ModelSource, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedSource{src: src, ttl: ttl}
}

// FetchModels returns the cached listing when it is fresh, otherwise asks
// the underlying source.
func (c *CachedSource) FetchModels(ctx context.Context, apiKey string, timeout time.Duration) litellm.Result {
	if apiKey == "" {
		c.mu.RLock()
		if c.cached.Error == "" && len(c.cached.Models) > 0 && time.Since(c.fetched) < c.ttl {
			res := c.cached
			c.mu.RUnlock()
			return res
		}
		c.mu.RUnlock()
	}

	res := c.src.FetchModels(ctx, apiKey, timeout)

	if apiKey == "" && res.Error == "" {
		c.mu.Lock()
		c.cached = res
		c.fetched = time.Now()
		c.mu.Unlock()
	}
	return res
}

// Invalidate drops the cached listing.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.cached = litellm.Result{}
	c.fetched = time.Time{}
	c.mu.Unlock()
}

// Ensure CachedSource satisfies ModelSource.
var _ ModelSource = (*CachedSource)(nil)
