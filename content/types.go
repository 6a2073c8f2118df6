// Package content discovers markdown posts, validates their frontmatter and
// serves ordered, filtered and paginated views over an immutable index.
package content

import "time"

// DateLayout is the calendar date format used in frontmatter and URLs.
const DateLayout = "2006-01-02"

// Category is reference data: a fixed, small set known before any post loads.
type Category struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CoverImage  string `yaml:"coverImage"`
}

// Post is a single loaded document. It is never modified after a load cycle
// produces it.
type Post struct {
	Slug           string
	Title          string
	Subtitle       string
	Category       string
	Date           time.Time
	Excerpt        string
	CoverImage     string
	SEODescription string
	RawBody        string

	// SourcePath is the document's name inside the content source.
	SourcePath string
}

// Description returns the SEO description, falling back to the excerpt.
func (p Post) Description() string {
	if p.SEODescription != "" {
		return p.SEODescription
	}
	return p.Excerpt
}

// Link returns the canonical path of the post.
func (p Post) Link() string {
	return "/blog/" + p.Category + "/" + p.Slug + "/"
}

// RenderedPost is a Post plus its rendered body. It is computed per request.
type RenderedPost struct {
	Post
	HTML               string
	ReadingTimeMinutes int
}

// Route is one (category, slug) pair that a static generator must pre-render.
type Route struct {
	Category string
	Slug     string
}
