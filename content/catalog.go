package content

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

// Catalog is the closed set of categories posts may reference, in declared order.
type Catalog struct {
	categories []Category
	bySlug     map[string]int
}

// DefaultCatalog returns the built-in categories.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(
		Category{
			Slug:        "design",
			Name:        "Design",
			Description: "Interfaces, typography and the craft of building things people enjoy using.",
		},
		Category{
			Slug:        "performance",
			Name:        "Performance",
			Description: "Making pages fast: rendering, caching and measuring what matters.",
		},
	)
	return c
}

// NewCatalog validates categories and builds a catalog. Slugs must be valid
// and unique; a missing name is derived from the slug.
func NewCatalog(categories ...Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("catalog: no categories defined")
	}
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		bySlug:     make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		cat.Slug = strings.TrimSpace(cat.Slug)
		if cat.Slug == "" {
			return nil, fmt.Errorf("catalog: category slug is required")
		}
		if !slug.IsValid(cat.Slug) {
			return nil, fmt.Errorf("catalog: invalid category slug %q", cat.Slug)
		}
		if _, dup := c.bySlug[cat.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate category slug %q", cat.Slug)
		}
		if strings.TrimSpace(cat.Name) == "" {
			cat.Name = titleFromSlug(cat.Slug)
		}
		c.bySlug[cat.Slug] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// LoadCatalog reads a YAML list of categories from name inside fsys.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", name, err)
	}
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	c, err := NewCatalog(categories...)
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, name)
	}
	return c, nil
}

// Categories returns a copy of the catalog in declared order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup returns the category with the given slug.
func (c *Catalog) Lookup(slug string) (Category, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Has reports whether slug names a catalog category.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}

// Slugs returns every category slug in declared order.
func (c *Catalog) Slugs() []string {
	out := make([]string, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.Slug
	}
	return out
}

func titleFromSlug(s string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return cases.Title(language.English).String(words)
}
