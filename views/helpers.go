package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/eringen/folio/content"
)

// PageURL returns the URL of page n of the list at base. Page 1 has no query.
func PageURL(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "?page=" + strconv.Itoa(n)
}

// CategoryURL is the list URL of a category.
func CategoryURL(slug string) string {
	return "/blog/" + url.PathEscape(slug) + "/"
}

// CategoryClass returns the classes of a category link in the nav, as styled
// by folio.css.
func CategoryClass(active bool) string {
	if active {
		return "category active"
	}
	return "category"
}

// TwitterShareURL is the tweet intent for postURL.
func TwitterShareURL(postURL, title string) string {
	return "https://twitter.com/intent/tweet?" + url.Values{"url": {postURL}, "text": {title}}.Encode()
}

// FacebookShareURL is the Facebook sharer link for postURL.
func FacebookShareURL(postURL string) string {
	return "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {postURL}}.Encode()
}

// postURL is the absolute URL of the post shown on page.
func postURL(page PostPage) string {
	if page.Meta.URL != "" {
		return page.Meta.URL
	}
	return strings.TrimRight(page.Site.URL, "/") + page.Post.Link()
}

// FormatDate renders a post date for display.
func FormatDate(p content.Post) string {
	return p.Date.Format("January 2, 2006")
}

// ReadingTime formats a reading time in minutes.
func ReadingTime(minutes int) string {
	if minutes < 1 {
		return ""
	}
	if minutes == 1 {
		return "1 min read"
	}
	return strconv.Itoa(minutes) + " min read"
}

func categoryName(categories []content.Category, slug string) string {
	for _, c := range categories {
		if c.Slug == slug {
			return c.Name
		}
	}
	return slug
}
