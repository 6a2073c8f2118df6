package views

import (
	"cmp"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/markdown"
)

// printer writes HTML fragments and remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) attr(name, value string) {
	p.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (p *printer) component(ctx context.Context, c templ.Component) {
	if p.err != nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

func layout(site SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		title := site.Name
		if meta.Title != "" && meta.Title != site.Name {
			title = meta.Title + " | " + site.Name
		}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw("<title>")
		p.text(title)
		p.raw("</title>")
		if meta.Description != "" {
			p.raw(`<meta name="description"`)
			p.attr("content", meta.Description)
			p.raw(">")
			p.raw(`<meta property="og:description"`)
			p.attr("content", meta.Description)
			p.raw(">")
		}
		p.raw(`<meta property="og:title"`)
		p.attr("content", title)
		p.raw(">")
		if meta.OGType != "" {
			p.raw(`<meta property="og:type"`)
			p.attr("content", meta.OGType)
			p.raw(">")
		}
		if meta.URL != "" {
			p.raw(`<link rel="canonical"`)
			p.attr("href", meta.URL)
			p.raw(`><meta property="og:url"`)
			p.attr("content", meta.URL)
			p.raw(">")
		}
		if meta.Image != "" {
			p.raw(`<meta property="og:image"`)
			p.attr("content", meta.Image)
			p.raw(">")
		}
		card := "summary"
		if meta.Image != "" {
			card = "summary_large_image"
		}
		p.raw(`<meta name="twitter:card"`)
		p.attr("content", card)
		p.raw(`><meta name="twitter:title"`)
		p.attr("content", cmp.Or(meta.Title, site.Name))
		p.raw(">")
		if meta.Description != "" {
			p.raw(`<meta name="twitter:description"`)
			p.attr("content", meta.Description)
			p.raw(">")
		}
		if meta.Image != "" {
			p.raw(`<meta name="twitter:image"`)
			p.attr("content", meta.Image)
			p.raw(">")
		}
		p.raw(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
		p.attr("title", site.Name)
		p.raw(">")
		p.raw(`<link rel="stylesheet" href="/public/folio.css">`)
		p.raw(`<script src="/public/htmx.min.js" defer></script>`)
		if meta.JSONLD != "" {
			// JSON-LD is produced by json.Marshal, which escapes <, > and &.
			p.raw(`<script type="application/ld+json">`)
			p.raw(meta.JSONLD)
			p.raw("</script>")
		}
		p.raw(`</head><body><header class="site-header"><a href="/blog/" class="site-name">`)
		p.text(site.Name)
		p.raw("</a></header>")
		p.component(ctx, body)
		p.raw(`<footer class="site-footer"><a href="/feed.xml">RSS</a></footer></body></html>`)
		return p.err
	})
}

// List renders a full page for the blog index or a category.
func List(page ListPage) templ.Component {
	return layout(page.Site, page.Meta, ListPartial(page))
}

// ListPartial renders only the #content region of a list page, for HTMX swaps.
func ListPartial(page ListPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<main id="content">`)
		if page.Category != nil {
			p.raw("<h1>")
			p.text(page.Category.Name)
			p.raw("</h1>")
			if page.Category.Description != "" {
				p.raw(`<p class="lede">`)
				p.text(page.Category.Description)
				p.raw("</p>")
			}
		} else {
			p.raw("<h1>")
			p.text(page.Site.Name)
			p.raw("</h1>")
		}

		p.raw(`<nav class="categories">`)
		p.raw(`<a href="/blog/"`)
		p.attr("class", CategoryClass(page.Category == nil))
		p.raw(">All</a>")
		for _, c := range page.Categories {
			active := page.Category != nil && page.Category.Slug == c.Slug
			p.raw("<a")
			p.attr("href", CategoryURL(c.Slug))
			p.attr("class", CategoryClass(active))
			p.raw(">")
			p.text(c.Name)
			p.raw("</a>")
		}
		p.raw("</nav>")

		if len(page.Page.Items) == 0 {
			p.raw(`<p class="empty">No posts yet.</p>`)
		} else {
			p.raw(`<ul class="posts">`)
			for _, post := range page.Page.Items {
				p.component(ctx, postSummary(post, categoryName(page.Categories, post.Category)))
			}
			p.raw("</ul>")
		}
		p.component(ctx, pagination(page))
		p.raw("</main>")
		return p.err
	})
}

func postSummary(post content.Post, category string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<li><article class="post-summary"><h2><a`)
		p.attr("href", post.Link())
		p.raw(">")
		p.text(post.Title)
		p.raw("</a></h2>")
		if post.Subtitle != "" {
			p.raw(`<p class="subtitle">`)
			p.text(post.Subtitle)
			p.raw("</p>")
		}
		p.raw(`<p class="meta"><time`)
		p.attr("datetime", post.Date.Format(content.DateLayout))
		p.raw(">")
		p.text(FormatDate(post))
		p.raw("</time> · <a")
		p.attr("href", CategoryURL(post.Category))
		p.raw(">")
		p.text(category)
		p.raw("</a></p><p>")
		p.text(post.Excerpt)
		p.raw("</p></article></li>")
		return p.err
	})
}

func pagination(page ListPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pg := page.Page
		if pg.TotalPages <= 1 {
			return nil
		}
		p := &printer{w: w}
		link := func(n int, label, class string) {
			href := PageURL(page.BasePath, n)
			p.raw("<a")
			p.attr("href", href)
			p.attr("hx-get", href)
			p.attr("hx-target", "#content")
			p.attr("hx-swap", "outerHTML")
			p.attr("hx-push-url", "true")
			if class != "" {
				p.attr("class", class)
			}
			p.raw(">")
			p.text(label)
			p.raw("</a>")
		}
		p.raw(`<nav class="pagination" aria-label="Pagination">`)
		if pg.HasPrev() {
			link(pg.Prev(), "Newer", "prev")
		}
		for _, n := range pg.Window(5) {
			if n == pg.Number {
				p.raw(`<span aria-current="page">`)
				p.text(strconv.Itoa(n))
				p.raw("</span>")
				continue
			}
			link(n, strconv.Itoa(n), "")
		}
		if pg.HasNext() {
			link(pg.Next(), "Older", "next")
		}
		p.raw("</nav>")
		return p.err
	})
}

// Post renders a full page for a single post.
func Post(page PostPage) templ.Component {
	return layout(page.Site, page.Meta, PostPartial(page))
}

// PostPartial renders only the #content region of a post page.
func PostPartial(page PostPage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		post := page.Post
		p := &printer{w: w}
		p.raw(`<main id="content">`)
		p.component(ctx, breadcrumb(
			crumb{Name: "Blog", Href: "/blog/"},
			crumb{Name: page.Category.Name, Href: CategoryURL(page.Category.Slug)},
			crumb{Name: post.Title},
		))
		p.raw(`<article class="post"><header><h1>`)
		p.text(post.Title)
		p.raw("</h1>")
		if post.Subtitle != "" {
			p.raw(`<p class="subtitle">`)
			p.text(post.Subtitle)
			p.raw("</p>")
		}
		p.raw(`<p class="meta"><time`)
		p.attr("datetime", post.Date.Format(content.DateLayout))
		p.raw(">")
		p.text(FormatDate(post.Post))
		p.raw("</time> · <a")
		p.attr("href", CategoryURL(page.Category.Slug))
		p.raw(">")
		p.text(page.Category.Name)
		p.raw("</a>")
		if rt := ReadingTime(post.ReadingTimeMinutes); rt != "" {
			p.raw(" · <span>")
			p.text(rt)
			p.raw("</span>")
		}
		p.raw("</p></header>")

		if src := markdown.SafeURL(post.CoverImage); src != "" {
			// SafeURL output is already attribute-escaped.
			p.raw(`<img class="cover" src="` + src + `"`)
			p.attr("alt", post.Title)
			if page.Cover != nil {
				p.attr("width", strconv.Itoa(page.Cover.Width))
				p.attr("height", strconv.Itoa(page.Cover.Height))
			}
			p.raw(">")
		}

		p.raw(`<div class="prose">`)
		p.component(ctx, markdown.HTML(post.HTML))
		p.raw("</div>")

		share := postURL(page)
		p.raw(`<footer class="post-footer"><a href="/blog/" class="back">&larr; Back to all posts</a><p class="share">Share: <a`)
		p.attr("href", TwitterShareURL(share, post.Title))
		p.raw(` target="_blank" rel="noopener noreferrer">Twitter</a> <a`)
		p.attr("href", FacebookShareURL(share))
		p.raw(` target="_blank" rel="noopener noreferrer">Facebook</a></p></footer></article>`)

		if len(page.Related) > 0 {
			p.raw(`<aside class="related"><h2>More in `)
			p.text(page.Category.Name)
			p.raw("</h2><ul>")
			for _, r := range page.Related {
				p.raw("<li><a")
				p.attr("href", r.Link())
				p.raw(">")
				p.text(r.Title)
				p.raw("</a></li>")
			}
			p.raw("</ul></aside>")
		}
		p.raw("</main>")
		return p.err
	})
}

// crumb is one breadcrumb entry. The entry without Href is the current page.
type crumb struct {
	Name string
	Href string
}

func breadcrumb(items ...crumb) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<nav class="breadcrumb" aria-label="Breadcrumb"><ol>`)
		for _, c := range items {
			p.raw("<li>")
			if c.Href == "" {
				p.raw(`<span aria-current="page">`)
				p.text(c.Name)
				p.raw("</span>")
			} else {
				p.raw("<a")
				p.attr("href", c.Href)
				p.raw(">")
				p.text(c.Name)
				p.raw("</a>")
			}
			p.raw("</li>")
		}
		p.raw("</ol></nav>")
		return p.err
	})
}

func message(title, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<main id="content" class="message"><h1>`)
		p.text(title)
		p.raw("</h1><p>")
		p.text(text)
		p.raw(`</p><p><a href="/blog/">Back to the blog</a></p></main>`)
		return p.err
	})
}

// NotFound renders the 404 page.
func NotFound(site SiteConfig) templ.Component {
	return layout(site, PageMeta{Title: "Not found"}, message("Not found", "The page you were looking for does not exist."))
}

// ServerError renders the 500 page.
func ServerError(site SiteConfig) templ.Component {
	return layout(site, PageMeta{Title: "Something went wrong"}, message("Something went wrong", "Please try again in a moment."))
}
