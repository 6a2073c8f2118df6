package content

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/folio/internal/metrics"
	"github.com/eringen/folio/markdown"
)

// Blog is the query surface used by the presentation layer. It wraps one
// load cycle's Index and renders bodies on demand.
type Blog struct {
	index      *Index
	renderer   *markdown.Renderer
	cache      *RenderCache
	generation string
	loadedAt   time.Time
}

// BlogOption configures a Blog.
type BlogOption func(*Blog)

// WithRenderCache memoizes rendered bodies in cache.
func WithRenderCache(cache *RenderCache) BlogOption {
	return func(b *Blog) {
		b.cache = cache
	}
}

// NewBlog creates a Blog over index. Each Blog gets a fresh generation ID.
func NewBlog(index *Index, renderer *markdown.Renderer, opts ...BlogOption) *Blog {
	b := &Blog{
		index:      index,
		renderer:   renderer,
		generation: uuid.NewString(),
		loadedAt:   time.Now(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// GetPost returns the rendered post with the given slug, or ErrNotFound.
func (b *Blog) GetPost(slug string) (RenderedPost, error) {
	post, err := b.index.BySlug(slug)
	if err != nil {
		return RenderedPost{}, err
	}
	return b.render(post)
}

// GetPostInCategory is GetPost for a /category/slug route: the category must
// exist and the post must be filed under it.
func (b *Blog) GetPostInCategory(category, slug string) (RenderedPost, error) {
	if !b.index.Catalog().Has(category) {
		return RenderedPost{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	post, err := b.index.BySlug(slug)
	if err != nil {
		return RenderedPost{}, err
	}
	if post.Category != category {
		return RenderedPost{}, fmt.Errorf("%w: %q is not in category %q", ErrNotFound, slug, category)
	}
	return b.render(post)
}

func (b *Blog) render(post Post) (RenderedPost, error) {
	var key string
	if b.cache != nil {
		key = renderKey(post)
		if res, ok := b.cache.get(key); ok {
			return RenderedPost{Post: post, HTML: res.HTML, ReadingTimeMinutes: res.ReadingTimeMinutes}, nil
		}
	}
	timer := metrics.NewTimer()
	res, err := b.renderer.Render(post.RawBody)
	if err != nil {
		return RenderedPost{}, fmt.Errorf("render %q: %w", post.Slug, err)
	}
	timer.ObserveDuration(metrics.RenderDuration)
	if b.cache != nil {
		b.cache.put(key, res)
	}
	return RenderedPost{Post: post, HTML: res.HTML, ReadingTimeMinutes: res.ReadingTimeMinutes}, nil
}

// GetAll returns every post, newest first, with bodies unrendered.
func (b *Blog) GetAll() []Post {
	return b.index.All()
}

// GetByCategory returns the posts in a category, newest first, or
// ErrUnknownCategory.
func (b *Blog) GetByCategory(slug string) ([]Post, error) {
	return b.index.ByCategory(slug)
}

// GetCategories returns the catalog in declared order.
func (b *Blog) GetCategories() []Category {
	return b.index.Catalog().Categories()
}

// Category looks up a single category, or returns ErrUnknownCategory.
func (b *Blog) Category(slug string) (Category, error) {
	cat, ok := b.index.Catalog().Lookup(slug)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, slug)
	}
	return cat, nil
}

// Related returns up to n other posts from post's category, newest first.
func (b *Blog) Related(post Post, n int) []Post {
	if n < 1 {
		return nil
	}
	posts, err := b.index.ByCategory(post.Category)
	if err != nil {
		return nil
	}
	related := make([]Post, 0, n)
	for _, p := range posts {
		if p.Slug == post.Slug {
			continue
		}
		related = append(related, p)
		if len(related) == n {
			break
		}
	}
	return related
}

// Routes lists every (category, slug) pair of this load cycle.
func (b *Blog) Routes() []Route {
	return b.index.Routes()
}

// Len returns the number of posts.
func (b *Blog) Len() int {
	return b.index.Len()
}

// Generation identifies the load cycle that produced this Blog.
func (b *Blog) Generation() string {
	return b.generation
}

// LoadedAt is when this Blog was built.
func (b *Blog) LoadedAt() time.Time {
	return b.loadedAt
}
