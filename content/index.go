package content

import (
	"fmt"
	"sort"
)

// Index is an immutable, date-ordered view over one load cycle's posts.
// It is safe for any number of concurrent readers.
type Index struct {
	catalog    *Catalog
	posts      []Post
	bySlug     map[string]int
	byCategory map[string][]int
}

// NewIndex sorts posts by date descending, keeping discovery order for equal
// dates, and builds the lookup tables. The input slice is not modified.
func NewIndex(posts []Post, catalog *Catalog) (*Index, error) {
	sorted := make([]Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	idx := &Index{
		catalog:    catalog,
		posts:      sorted,
		bySlug:     make(map[string]int, len(sorted)),
		byCategory: make(map[string][]int, len(catalog.Slugs())),
	}
	for _, slug := range catalog.Slugs() {
		idx.byCategory[slug] = []int{}
	}
	for i, p := range sorted {
		if _, dup := idx.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, p.Slug)
		}
		if !catalog.Has(p.Category) {
			return nil, fmt.Errorf("post %q: %w: %q", p.Slug, ErrCategoryIntegrity, p.Category)
		}
		idx.bySlug[p.Slug] = i
		idx.byCategory[p.Category] = append(idx.byCategory[p.Category], i)
	}
	return idx, nil
}

// All returns every post, newest first.
func (x *Index) All() []Post {
	out := make([]Post, len(x.posts))
	copy(out, x.posts)
	return out
}

// ByCategory returns the posts filed under slug, newest first. A known
// category with no posts yields an empty slice; an unknown one yields
// ErrUnknownCategory.
func (x *Index) ByCategory(slug string) ([]Post, error) {
	positions, ok := x.byCategory[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, slug)
	}
	out := make([]Post, len(positions))
	for i, pos := range positions {
		out[i] = x.posts[pos]
	}
	return out, nil
}

// BySlug returns the post with exactly this slug.
func (x *Index) BySlug(slug string) (Post, error) {
	pos, ok := x.bySlug[slug]
	if !ok {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return x.posts[pos], nil
}

// Len returns the number of indexed posts.
func (x *Index) Len() int {
	return len(x.posts)
}

// Catalog returns the catalog the index was validated against.
func (x *Index) Catalog() *Catalog {
	return x.catalog
}

// Routes lists every (category, slug) pair in All order. It is exactly the
// set a static generator must pre-render for this load cycle.
func (x *Index) Routes() []Route {
	routes := make([]Route, len(x.posts))
	for i, p := range x.posts {
		routes[i] = Route{Category: p.Category, Slug: p.Slug}
	}
	return routes
}
