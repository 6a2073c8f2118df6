package content

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderSkipsMalformedDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": doc("a", "design", "2024-01-01", "one"),
		"b.md": doc("b", "design", "2024-99-01", "bad date"),
		"c.md": doc("c", "performance", "2024-03-01", "three"),
	}

	res, err := NewLoader(fsys, testCatalog(t)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "c"}, slugs(res.Posts))
	require.Len(t, res.Problems, 1)
	assert.Equal(t, "b.md", res.Problems[0].Path)
	assert.Equal(t, "invalid_metadata", res.Problems[0].Reason())
}

func TestLoaderRejectsUnknownCategory(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": doc("a", "design", "2024-01-01", ""),
		"b.md": doc("b", "gardening", "2024-01-02", ""),
	}

	res, err := NewLoader(fsys, testCatalog(t)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, slugs(res.Posts))
	require.Len(t, res.Problems, 1)
	assert.True(t, errors.Is(res.Problems[0], ErrCategoryIntegrity))
	assert.Equal(t, "category", res.Problems[0].Reason())
}

func TestLoaderFirstSlugWins(t *testing.T) {
	fsys := fstest.MapFS{
		"1-first.md":  doc("same", "design", "2024-01-01", "first"),
		"2-second.md": doc("same", "performance", "2024-02-01", "second"),
	}

	res, err := NewLoader(fsys, testCatalog(t)).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Posts, 1)
	assert.Equal(t, "1-first.md", res.Posts[0].SourcePath)
	require.Len(t, res.Problems, 1)
	assert.True(t, errors.Is(res.Problems[0], ErrDuplicateSlug))
	assert.Equal(t, "2-second.md", res.Problems[0].Path)
}

func TestLoaderFiltersFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"post.md":            doc("post", "design", "2024-01-01", ""),
		"long.markdown":      doc("long", "design", "2024-01-02", ""),
		"notes.txt":          {Data: []byte("not markdown")},
		".hidden.md":         doc("hidden", "design", "2024-01-03", ""),
		"_draft.md":          doc("draft", "design", "2024-01-04", ""),
		"_drafts/wip.md":     doc("wip", "design", "2024-01-05", ""),
		"nested/deeper.md":   doc("deeper", "performance", "2024-01-06", ""),
		"plain.md":           {Data: []byte("# no frontmatter")},
		"images/cover.jpg":   {Data: []byte{0xff, 0xd8}},
		"nested/.git/HEAD":   {Data: []byte("ref")},
		"nested/.git/x.md":   doc("git", "design", "2024-01-07", ""),
	}

	res, err := NewLoader(fsys, testCatalog(t)).Load(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"post", "long", "deeper"}, slugs(res.Posts))
	require.Len(t, res.Problems, 1)
	assert.Equal(t, "plain.md", res.Problems[0].Path)
	assert.Equal(t, "missing_frontmatter", res.Problems[0].Reason())
}

func TestLoaderDiscoveryOrderIsLexical(t *testing.T) {
	fsys := fstest.MapFS{
		"c.md": doc("c", "design", "2024-01-01", ""),
		"a.md": doc("a", "design", "2024-01-01", ""),
		"b.md": doc("b", "design", "2024-01-01", ""),
	}
	for i := 0; i < 5; i++ {
		res, err := NewLoader(fsys, testCatalog(t)).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, slugs(res.Posts))
	}
}

func TestLoaderWithRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/a.md": doc("a", "design", "2024-01-01", ""),
		"other/b.md": doc("b", "design", "2024-01-01", ""),
	}
	res, err := NewLoader(fsys, testCatalog(t), WithRoot("posts")).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, slugs(res.Posts))
	assert.Equal(t, "posts/a.md", res.Posts[0].SourcePath)
}

func TestLoaderMissingRootFails(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}, testCatalog(t), WithRoot("nope")).Load(context.Background())
	assert.Error(t, err)
}

func TestLoaderHonoursCancelledContext(t *testing.T) {
	fsys := fstest.MapFS{"a.md": doc("a", "design", "2024-01-01", "")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(fsys, testCatalog(t)).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
