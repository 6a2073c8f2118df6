package content

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/eringen/folio/internal/logger"
)

func init() {
	logger.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testCatalog has two categories, mirroring the built-in catalog.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(
		Category{Slug: "design", Name: "Design", Description: "d"},
		Category{Slug: "performance", Name: "Performance", Description: "p"},
		Category{Slug: "empty", Name: "Empty", Description: "no posts"},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

// doc builds a YAML-frontmatter document. Extra lines are appended to the header.
func doc(slug, category, date, body string, extra ...string) *fstest.MapFile {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: Title of %s\n", slug)
	fmt.Fprintf(&b, "subtitle: Subtitle of %s\n", slug)
	fmt.Fprintf(&b, "slug: %s\n", slug)
	fmt.Fprintf(&b, "category: %s\n", category)
	fmt.Fprintf(&b, "date: %s\n", date)
	fmt.Fprintf(&b, "excerpt: Excerpt of %s\n", slug)
	for _, line := range extra {
		b.WriteString(line + "\n")
	}
	b.WriteString("---\n")
	b.WriteString(body)
	return &fstest.MapFile{Data: []byte(b.String())}
}

func post(slug, category, date string) Post {
	d, err := parseDate(date)
	if err != nil {
		panic(err)
	}
	return Post{
		Slug:     slug,
		Title:    "Title of " + slug,
		Subtitle: "Subtitle of " + slug,
		Category: category,
		Date:     d,
		Excerpt:  "Excerpt of " + slug,
		RawBody:  "Body of " + slug,
	}
}

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}
