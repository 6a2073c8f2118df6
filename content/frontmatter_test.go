package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentYAML(t *testing.T) {
	src := []byte(`---
title: Fast Pages
subtitle: Measuring what matters
slug: fast-pages
category: performance
date: 2024-06-01
excerpt: A short summary.
coverImage: /images/fast.jpg
seoDescription: Search summary
---
# Fast Pages

Body text.
`)
	p, err := ParseDocument("fast-pages.md", src)
	require.NoError(t, err)

	assert.Equal(t, "fast-pages", p.Slug)
	assert.Equal(t, "Fast Pages", p.Title)
	assert.Equal(t, "Measuring what matters", p.Subtitle)
	assert.Equal(t, "performance", p.Category)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), p.Date)
	assert.Equal(t, "A short summary.", p.Excerpt)
	assert.Equal(t, "/images/fast.jpg", p.CoverImage)
	assert.Equal(t, "Search summary", p.SEODescription)
	assert.Equal(t, "Search summary", p.Description())
	assert.Equal(t, "fast-pages.md", p.SourcePath)
	assert.Contains(t, p.RawBody, "# Fast Pages")
	assert.NotContains(t, p.RawBody, "slug:")
}

func TestParseDocumentTOML(t *testing.T) {
	src := []byte(`+++
title = "Grids"
subtitle = "Layout systems"
slug = "grids"
category = "design"
date = "2023-11-05"
excerpt = "On grids."
+++
Body.
`)
	p, err := ParseDocument("grids.md", src)
	require.NoError(t, err)
	assert.Equal(t, "grids", p.Slug)
	assert.Equal(t, "design", p.Category)
	assert.Equal(t, 2023, p.Date.Year())
	assert.Equal(t, "On grids.", p.Description())
}

func TestParseDocumentTOMLBareDate(t *testing.T) {
	src := []byte(`+++
title = "Grids"
subtitle = "Layout systems"
slug = "grids"
category = "design"
date = 2023-11-05
excerpt = "On grids."
+++
Body.
`)
	p, err := ParseDocument("grids.md", src)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC), p.Date)

	src = []byte("+++\ntitle = \"T\"\nsubtitle = \"S\"\nslug = \"t\"\ncategory = \"design\"\ndate = 2024-02-03T10:30:00Z\nexcerpt = \"E\"\n+++\nbody")
	p, err = ParseDocument("t.md", src)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 2, 3, 10, 30, 0, 0, time.UTC).Equal(p.Date))
}

func TestParseDocumentRFC3339Date(t *testing.T) {
	src := []byte("---\ntitle: T\nsubtitle: S\nslug: t\ncategory: design\ndate: \"2024-02-03T10:30:00Z\"\nexcerpt: E\n---\nbody")
	p, err := ParseDocument("t.md", src)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 3, 10, 30, 0, 0, time.UTC), p.Date)
}

func TestParseDocumentMissingFrontmatter(t *testing.T) {
	_, err := ParseDocument("plain.md", []byte("# Just markdown\n"))
	assert.True(t, errors.Is(err, ErrMissingFrontmatter), "got %v", err)
}

func TestParseDocumentValidation(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		field string
	}{
		{
			name:  "missing title",
			src:   "---\nsubtitle: S\nslug: a\ncategory: design\ndate: 2024-01-01\nexcerpt: E\n---\n",
			field: "title",
		},
		{
			name:  "missing excerpt",
			src:   "---\ntitle: T\nsubtitle: S\nslug: a\ncategory: design\ndate: 2024-01-01\n---\n",
			field: "excerpt",
		},
		{
			name:  "blank subtitle",
			src:   "---\ntitle: T\nsubtitle: \"   \"\nslug: a\ncategory: design\ndate: 2024-01-01\nexcerpt: E\n---\n",
			field: "subtitle",
		},
		{
			name:  "invalid date",
			src:   "---\ntitle: T\nsubtitle: S\nslug: a\ncategory: design\ndate: 2024-13-45\nexcerpt: E\n---\n",
			field: "date",
		},
		{
			name:  "missing date",
			src:   "---\ntitle: T\nsubtitle: S\nslug: a\ncategory: design\nexcerpt: E\n---\n",
			field: "date",
		},
		{
			name:  "invalid slug",
			src:   "---\ntitle: T\nsubtitle: S\nslug: Not A Slug\ncategory: design\ndate: 2024-01-01\nexcerpt: E\n---\n",
			field: "slug",
		},
		{
			name:  "missing category",
			src:   "---\ntitle: T\nsubtitle: S\nslug: a\ndate: 2024-01-01\nexcerpt: E\n---\n",
			field: "category",
		},
		{
			name:  "bad cover image",
			src:   "---\ntitle: T\nsubtitle: S\nslug: a\ncategory: design\ndate: 2024-01-01\nexcerpt: E\ncoverImage: not a uri\n---\n",
			field: "coverImage",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument("a.md", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
