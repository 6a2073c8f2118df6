package content

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/eringen/folio/internal/metrics"
	"github.com/eringen/folio/markdown"
)

// RenderCache memoizes rendered bodies keyed by slug and a hash of the raw
// body, so an edited post never serves stale HTML. It outlives load cycles.
type RenderCache struct {
	mu      sync.RWMutex
	entries map[string]markdown.Result
}

// NewRenderCache creates an empty RenderCache.
func NewRenderCache() *RenderCache {
	return &RenderCache{entries: make(map[string]markdown.Result)}
}

func renderKey(p Post) string {
	sum := sha256.Sum256([]byte(p.RawBody))
	return p.Slug + "@" + hex.EncodeToString(sum[:])
}

func (c *RenderCache) get(key string) (markdown.Result, bool) {
	c.mu.RLock()
	res, ok := c.entries[key]
	c.mu.RUnlock()
	metrics.ObserveRenderCache(ok)
	return res, ok
}

func (c *RenderCache) put(key string, res markdown.Result) {
	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
}

// Len returns the number of cached bodies.
func (c *RenderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Prune drops every entry that does not belong to a post in posts.
func (c *RenderCache) Prune(posts []Post) {
	live := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		live[renderKey(p)] = struct{}{}
	}
	c.mu.Lock()
	for key := range c.entries {
		if _, ok := live[key]; !ok {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
