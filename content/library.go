package content

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eringen/folio/internal/logger"
	"github.com/eringen/folio/internal/metrics"
	"github.com/eringen/folio/markdown"
)

// Library owns the currently published Blog. Each load cycle builds a new
// Blog and swaps it in whole; readers never see a partially built index.
type Library struct {
	loader   *Loader
	catalog  *Catalog
	renderer *markdown.Renderer
	cache    *RenderCache
	interval time.Duration

	current  atomic.Pointer[Blog]
	problems atomic.Pointer[[]*MalformedDocumentError]
	mu       sync.Mutex // serialises load cycles
}

// LibraryConfig wires a Library.
type LibraryConfig struct {
	Loader   *Loader
	Catalog  *Catalog
	Renderer *markdown.Renderer
	// Cache, when set, is shared by every Blog the Library publishes.
	Cache *RenderCache
	// ReloadInterval > 0 makes Current rebuild a Blog older than the interval.
	ReloadInterval time.Duration
}

// NewLibrary creates a Library. Call Reload before Current.
func NewLibrary(cfg LibraryConfig) *Library {
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = markdown.NewRenderer()
	}
	return &Library{
		loader:   cfg.Loader,
		catalog:  cfg.Catalog,
		renderer: renderer,
		cache:    cfg.Cache,
		interval: cfg.ReloadInterval,
	}
}

// Reload runs a full load cycle and publishes the result. On failure the
// previously published Blog stays in place.
func (l *Library) Reload(ctx context.Context) (*Blog, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reload(ctx)
}

func (l *Library) reload(ctx context.Context) (*Blog, error) {
	timer := metrics.NewTimer()
	res, err := l.loader.Load(ctx)
	if err != nil {
		metrics.ObserveLoadCycle(err, timer.Elapsed(), 0)
		return nil, err
	}
	index, err := NewIndex(res.Posts, l.catalog)
	if err != nil {
		metrics.ObserveLoadCycle(err, timer.Elapsed(), 0)
		return nil, fmt.Errorf("build index: %w", err)
	}

	var opts []BlogOption
	if l.cache != nil {
		l.cache.Prune(res.Posts)
		opts = append(opts, WithRenderCache(l.cache))
	}
	blog := NewBlog(index, l.renderer, opts...)

	problems := res.Problems
	l.problems.Store(&problems)
	l.current.Store(blog)
	metrics.ObserveLoadCycle(nil, timer.Elapsed(), index.Len())

	logger.WithGeneration(blog.Generation()).Info("content index published",
		slog.Int("posts", index.Len()),
		slog.Int("rejected", len(res.Problems)),
		slog.Duration("took", timer.Elapsed()),
	)
	return blog, nil
}

func (l *Library) stale(b *Blog) bool {
	return b == nil || (l.interval > 0 && time.Since(b.LoadedAt()) >= l.interval)
}

// Current returns the published Blog, reloading first when it is older than
// the reload interval. A failed reload is logged and the old Blog is served.
func (l *Library) Current(ctx context.Context) (*Blog, error) {
	b := l.current.Load()
	if !l.stale(b) {
		return b, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// another caller may have reloaded while we waited
	if b = l.current.Load(); !l.stale(b) {
		return b, nil
	}
	fresh, err := l.reload(ctx)
	if err != nil {
		if b != nil {
			logger.Error("content reload failed, serving previous index",
				slog.String("generation", b.Generation()),
				slog.String("error", err.Error()),
			)
			return b, nil
		}
		return nil, err
	}
	return fresh, nil
}

// Problems returns the documents rejected by the last successful load cycle.
func (l *Library) Problems() []*MalformedDocumentError {
	p := l.problems.Load()
	if p == nil {
		return nil
	}
	out := make([]*MalformedDocumentError, len(*p))
	copy(out, *p)
	return out
}
