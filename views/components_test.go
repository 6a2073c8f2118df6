package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/media"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

var (
	design = content.Category{Slug: "design", Name: "Design", Description: "Visual things"}
	perf   = content.Category{Slug: "performance", Name: "Performance"}
	site   = SiteConfig{Name: "Folio", URL: "https://example.com"}
)

func testPost(slug, category string) content.Post {
	return content.Post{
		Slug:     slug,
		Title:    "Title <" + slug + ">",
		Category: category,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Excerpt:  "Excerpt of " + slug,
	}
}

func TestListRendersPostsAndCategories(t *testing.T) {
	posts := []content.Post{testPost("a", "design"), testPost("b", "performance")}
	html := render(t, List(ListPage{
		Site:       site,
		Meta:       PageMeta{Title: "Folio", Description: "desc & more"},
		Categories: []content.Category{design, perf},
		Page:       content.Paginate(posts, 1, 10),
		BasePath:   "/blog/",
	}))

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Folio</title>",
		`content="desc &amp; more"`,
		`href="/blog/design/a/"`,
		`href="/blog/performance/b/"`,
		"Title &lt;a&gt;",
		`href="/blog/design/"`,
		">Performance</a>",
		`datetime="2024-06-01"`,
		"June 1, 2024",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("list page missing %q", want)
		}
	}
	if strings.Contains(html, "pagination") {
		t.Error("single page should not render pagination")
	}
}

func TestListPartialEmptyAndCategory(t *testing.T) {
	html := render(t, ListPartial(ListPage{
		Site:       site,
		Categories: []content.Category{design, perf},
		Category:   &design,
		Page:       content.Paginate([]content.Post{}, 1, 10),
		BasePath:   "/blog/design/",
	}))
	if strings.Contains(html, "<!DOCTYPE") {
		t.Error("partial should not render the layout")
	}
	for _, want := range []string{"<h1>Design</h1>", "Visual things", "No posts yet."} {
		if !strings.Contains(html, want) {
			t.Errorf("partial missing %q", want)
		}
	}
}

func TestPagination(t *testing.T) {
	var posts []content.Post
	for i := 0; i < 25; i++ {
		posts = append(posts, testPost("p"+string(rune('a'+i)), "design"))
	}
	html := render(t, ListPartial(ListPage{
		Site:     site,
		Page:     content.Paginate(posts, 2, 10),
		BasePath: "/blog/",
	}))
	for _, want := range []string{
		`class="pagination"`,
		`<a href="/blog/" hx-get="/blog/"`,
		`href="/blog/?page=3"`,
		`<span aria-current="page">2</span>`,
		">Newer</a>",
		">Older</a>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("pagination missing %q", want)
		}
	}
}

func TestPaginationPastTheEnd(t *testing.T) {
	var posts []content.Post
	for i := 0; i < 5; i++ {
		posts = append(posts, testPost("p"+string(rune('a'+i)), "design"))
	}
	html := render(t, ListPartial(ListPage{
		Site:     site,
		Page:     content.Paginate(posts, 9, 2),
		BasePath: "/blog/",
	}))
	if !strings.Contains(html, `<a href="/blog/?page=3" hx-get="/blog/?page=3" hx-target="#content" hx-swap="outerHTML" hx-push-url="true" class="prev">Newer</a>`) {
		t.Errorf("Newer link should point at the last page:\n%s", html)
	}
	if strings.Contains(html, "page=8") || strings.Contains(html, ">Older</a>") {
		t.Error("no link may lead further past the end")
	}
}

func TestCategoryClass(t *testing.T) {
	if got := CategoryClass(false); got != "category" {
		t.Errorf("CategoryClass(false) = %q", got)
	}
	if got := CategoryClass(true); got != "category active" {
		t.Errorf("CategoryClass(true) = %q", got)
	}
	html := render(t, ListPartial(ListPage{
		Site:       site,
		Categories: []content.Category{design, perf},
		Category:   &design,
		Page:       content.Paginate([]content.Post{}, 1, 10),
		BasePath:   "/blog/design/",
	}))
	if !strings.Contains(html, `<a href="/blog/design/" class="category active">Design</a>`) {
		t.Errorf("active category link not marked:\n%s", html)
	}
}

func TestPostPage(t *testing.T) {
	p := testPost("a", "design")
	p.Subtitle = "A subtitle"
	p.CoverImage = "/public/covers/a.png"
	page := PostPage{
		Site:     site,
		Meta:     PageMeta{Title: p.Title, JSONLD: `{"@type":"BlogPosting"}`},
		Post:     content.RenderedPost{Post: p, HTML: "<p>hello <em>world</em></p>", ReadingTimeMinutes: 3},
		Category: design,
		Related:  []content.Post{testPost("b", "design")},
		Cover:    &media.Dimensions{Width: 800, Height: 400},
	}
	html := render(t, Post(page))
	for _, want := range []string{
		"<p>hello <em>world</em></p>",
		"A subtitle",
		"3 min read",
		`src="/public/covers/a.png"`,
		`width="800" height="400"`,
		`<script type="application/ld+json">{"@type":"BlogPosting"}</script>`,
		"More in Design",
		`href="/blog/design/b/"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("post page missing %q", want)
		}
	}

	page.Cover = nil
	page.Post.CoverImage = "javascript:alert(1)"
	html = render(t, PostPartial(page))
	if strings.Contains(html, "<img") {
		t.Error("unsafe cover URL should not render an image")
	}
}

func TestPostPageBreadcrumbAndShare(t *testing.T) {
	p := testPost("a", "design")
	p.Title = "Grids & Type"
	page := PostPage{
		Site:     site,
		Meta:     PageMeta{Title: p.Title, URL: "https://example.com/blog/design/a/"},
		Post:     content.RenderedPost{Post: p, HTML: "<p>x</p>"},
		Category: design,
	}
	html := render(t, PostPartial(page))
	for _, want := range []string{
		`<nav class="breadcrumb" aria-label="Breadcrumb"><ol><li><a href="/blog/">Blog</a></li><li><a href="/blog/design/">Design</a></li><li><span aria-current="page">Grids &amp; Type</span></li></ol></nav>`,
		`href="https://twitter.com/intent/tweet?text=Grids+%26+Type&amp;url=https%3A%2F%2Fexample.com%2Fblog%2Fdesign%2Fa%2F"`,
		`href="https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fexample.com%2Fblog%2Fdesign%2Fa%2F"`,
		`rel="noopener noreferrer"`,
		"Back to all posts",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("post partial missing %q\n%s", want, html)
		}
	}

	// Without a canonical URL the share links fall back to the site URL.
	page.Meta.URL = ""
	html = render(t, PostPartial(page))
	if !strings.Contains(html, "u=https%3A%2F%2Fexample.com%2Fblog%2Fdesign%2Fa%2F") {
		t.Errorf("share link without canonical URL:\n%s", html)
	}
}

func TestLayoutTwitterMeta(t *testing.T) {
	html := render(t, Post(PostPage{
		Site: site,
		Meta: PageMeta{
			Title:       "Grids",
			Description: "On grids",
			Image:       "https://example.com/public/covers/a.png",
		},
		Post:     content.RenderedPost{Post: testPost("a", "design")},
		Category: design,
	}))
	for _, want := range []string{
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="twitter:title" content="Grids">`,
		`<meta name="twitter:description" content="On grids">`,
		`<meta name="twitter:image" content="https://example.com/public/covers/a.png">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("layout missing %q", want)
		}
	}

	html = render(t, NotFound(site))
	if !strings.Contains(html, `<meta name="twitter:card" content="summary">`) {
		t.Error("pages without an image use the summary card")
	}
	if strings.Contains(html, "twitter:image") {
		t.Error("twitter:image without an image")
	}
}

func TestErrorPages(t *testing.T) {
	if html := render(t, NotFound(site)); !strings.Contains(html, "Not found") {
		t.Error("NotFound page missing title")
	}
	if html := render(t, ServerError(site)); !strings.Contains(html, "Something went wrong") {
		t.Error("ServerError page missing title")
	}
}

func TestHelpers(t *testing.T) {
	if got := PageURL("/blog/", 1); got != "/blog/" {
		t.Errorf("PageURL page 1 = %q", got)
	}
	if got := PageURL("/blog/design/", 4); got != "/blog/design/?page=4" {
		t.Errorf("PageURL page 4 = %q", got)
	}
	tests := map[int]string{0: "", 1: "1 min read", 7: "7 min read"}
	for in, want := range tests {
		if got := ReadingTime(in); got != want {
			t.Errorf("ReadingTime(%d) = %q, want %q", in, got, want)
		}
	}
}
