package views

import (
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/media"
)

// SiteConfig holds the site-wide settings every page template needs.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Blog")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
	JSONLD      string
}

// ListPage is a paginated list of posts: the blog index or one category.
type ListPage struct {
	Site       SiteConfig
	Meta       PageMeta
	Categories []content.Category
	// Category is nil on the all-posts index.
	Category *content.Category
	Page     content.Page[content.Post]
	// BasePath is the list URL without a page query, e.g. "/blog/design/".
	BasePath string
}

// PostPage is a single rendered post.
type PostPage struct {
	Site     SiteConfig
	Meta     PageMeta
	Post     content.RenderedPost
	Category content.Category
	Related  []content.Post
	// Cover is nil when the cover image is missing or could not be probed.
	Cover *media.Dimensions
}
