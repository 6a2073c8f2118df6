package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) buildSitemap(blog *content.Blog) sitemapURLSet {
	base := a.Config.URL
	posts := blog.GetAll()

	index := sitemapURL{Loc: BuildURL(base, "blog")}
	if len(posts) > 0 {
		index.LastMod = posts[0].Date.Format(content.DateLayout)
	}
	urls := []sitemapURL{index}

	for _, cat := range blog.GetCategories() {
		u := sitemapURL{Loc: BuildURL(base, "blog", cat.Slug)}
		// category lists are newest first
		if inCat, err := blog.GetByCategory(cat.Slug); err == nil && len(inCat) > 0 {
			u.LastMod = inCat[0].Date.Format(content.DateLayout)
		}
		urls = append(urls, u)
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(base, "blog", p.Category, p.Slug),
			LastMod: p.Date.Format(content.DateLayout),
		})
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}

func (a *App) renderSitemap(c echo.Context, blog *content.Blog) error {
	sitemap := a.buildSitemap(blog)
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
