package folio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/internal/logger"
	"github.com/eringen/folio/media"
	"github.com/eringen/folio/views"
)

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// pageParam reads ?page=N. Anything that does not parse is page 1.
func pageParam(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return n
}

func (a *App) blog(c echo.Context) (*content.Blog, error) {
	return a.Library.Current(c.Request().Context())
}

func handleRootRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/blog/")
}

func (a *App) handleBlogIndex(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return err
	}
	page := views.ListPage{
		Site:       a.Config.views(),
		Categories: blog.GetCategories(),
		Page:       content.Paginate(blog.GetAll(), pageParam(c), a.Config.PageSize),
		BasePath:   "/blog/",
	}
	page.Meta = views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL, "blog"),
		OGType:      "website",
		JSONLD:      WebsiteJsonLD(a.Config),
	}
	return a.renderList(c, page)
}

func (a *App) handleCategory(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return err
	}
	cat, err := blog.Category(c.Param("category"))
	if err != nil {
		return err
	}
	posts, err := blog.GetByCategory(cat.Slug)
	if err != nil {
		return err
	}
	page := views.ListPage{
		Site:       a.Config.views(),
		Categories: blog.GetCategories(),
		Category:   &cat,
		Page:       content.Paginate(posts, pageParam(c), a.Config.PageSize),
		BasePath:   "/blog/" + cat.Slug + "/",
	}
	page.Meta = views.PageMeta{
		Title:       cat.Name,
		Description: cat.Description,
		URL:         BuildURL(a.Config.URL, "blog", cat.Slug),
		OGType:      "website",
		Image:       absoluteImage(a.Config.URL, cat.CoverImage),
	}
	return a.renderList(c, page)
}

func (a *App) renderList(c echo.Context, page views.ListPage) error {
	if isHTMX(c) && c.QueryParam("partial") == "list" {
		return Render(c, a.Views.ListPartial(page))
	}
	return Render(c, a.Views.List(page))
}

func (a *App) handlePost(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return err
	}
	post, err := blog.GetPostInCategory(c.Param("category"), c.Param("slug"))
	if err != nil {
		return err
	}
	cat, err := blog.Category(post.Category)
	if err != nil {
		return err
	}

	page := views.PostPage{
		Site:     a.Config.views(),
		Post:     post,
		Category: cat,
		Related:  blog.Related(post.Post, relatedPosts),
		Meta: views.PageMeta{
			Title:       post.Title,
			Description: post.Description(),
			URL:         BuildURL(a.Config.URL, "blog", post.Category, post.Slug),
			OGType:      "article",
			Image:       absoluteImage(a.Config.URL, post.CoverImage),
			JSONLD:      BlogPostingJsonLD(post.Post, a.Config),
		},
	}
	if post.CoverImage != "" {
		if dims, err := a.media.Lookup(post.CoverImage); err == nil {
			fit := dims.Fit(media.MaxDisplayWidth)
			page.Cover = &fit
		}
	}

	if isHTMX(c) && c.QueryParam("partial") == "post" {
		return Render(c, a.Views.PostPartial(page))
	}
	return Render(c, a.Views.Post(page))
}

func (a *App) handleSitemap(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, blog)
}

func (a *App) handleFeed(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return err
	}
	return a.renderRSS(c, blog)
}

func (a *App) handleHealth(c echo.Context) error {
	blog, err := a.blog(c)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, Health{Status: "unavailable", Error: err.Error()})
	}
	return c.JSON(http.StatusOK, Health{
		Status:     "ok",
		Generation: blog.Generation(),
		LoadedAt:   blog.LoadedAt().UTC(),
		Posts:      blog.Len(),
		Rejected:   len(a.Library.Problems()),
	})
}

// errorStatus maps a handler error to the HTTP status it is served with.
func errorStatus(err error) int {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, content.ErrUnknownCategory) {
		return http.StatusNotFound
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := errorStatus(err)
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, a.Views.NotFound(a.Config.views()))
	case code >= 500:
		logger.Error("server error",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err.Error(),
		)
		_ = RenderStatus(c, code, a.Views.ServerError(a.Config.views()))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
