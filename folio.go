// Package folio serves a blog whose posts are markdown files with
// frontmatter, grouped into a fixed set of categories.
//
// Sites provide their own templ components via the ViewFuncs struct; folio
// handles content loading, routing, middleware, feeds and the sitemap.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/internal/logger"
	"github.com/eringen/folio/markdown"
	"github.com/eringen/folio/media"
	"github.com/eringen/folio/views"
)

// staticPrefix is the URL path the static directory is served under.
const staticPrefix = "/public"

// ViewFuncs holds the templ components folio calls when rendering pages.
// Any nil field falls back to the default component from package views.
type ViewFuncs struct {
	List        func(page views.ListPage) templ.Component
	ListPartial func(page views.ListPage) templ.Component
	Post        func(page views.PostPage) templ.Component
	PostPartial func(page views.PostPage) templ.Component
	NotFound    func(site views.SiteConfig) templ.Component
	ServerError func(site views.SiteConfig) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		List:        views.List,
		ListPartial: views.ListPartial,
		Post:        views.Post,
		PostPartial: views.PostPartial,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v *ViewFuncs) fillDefaults() {
	d := DefaultViews()
	if v.List == nil {
		v.List = d.List
	}
	if v.ListPartial == nil {
		v.ListPartial = d.ListPartial
	}
	if v.Post == nil {
		v.Post = d.Post
	}
	if v.PostPartial == nil {
		v.PostPartial = d.PostPartial
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App is the central folio application. It wires together the content
// library, handlers, middleware, and templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Library *content.Library
	Views   ViewFuncs

	catalog      *content.Catalog
	contentFS    fs.FS
	staticFS     fs.FS
	media        *media.Prober
	customRoutes []func(*App)
}

// New creates a new App with the given configuration and view functions.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.fillDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  v,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.contentFS == nil {
		a.contentFS = os.DirFS(a.Config.ContentDir)
	}
	if a.staticFS == nil {
		a.staticFS = os.DirFS(a.Config.StaticDir)
	}
	return a
}

// Init validates the configuration, runs the first load cycle and registers
// middleware and routes. Start calls it; tests call it directly and drive
// a.Echo with httptest.
func (a *App) Init(ctx context.Context) error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("folio: invalid config: %w", err)
	}

	if a.catalog == nil {
		catalog, err := a.Config.Catalog()
		if err != nil {
			return fmt.Errorf("folio: %w", err)
		}
		a.catalog = catalog
	}

	var cache *content.RenderCache
	if a.Config.RenderCache {
		cache = content.NewRenderCache()
	}
	mdOpts := []markdown.Option{markdown.WithTypographer()}
	if a.Config.HardWraps {
		mdOpts = append(mdOpts, markdown.WithHardWraps())
	}
	a.Library = content.NewLibrary(content.LibraryConfig{
		Loader:         content.NewLoader(a.contentFS, a.catalog),
		Catalog:        a.catalog,
		Renderer:       markdown.NewRenderer(mdOpts...),
		Cache:          cache,
		ReloadInterval: a.Config.ReloadInterval,
	})
	if _, err := a.Library.Reload(ctx); err != nil {
		return fmt.Errorf("folio: initial load: %w", err)
	}
	for _, p := range a.Library.Problems() {
		logger.Warn("document rejected", "path", p.Path, "reason", p.Reason())
	}

	a.media = media.NewProber(a.staticFS, staticPrefix)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", a.Config.Addr, "posts", a.postCount(ctx))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return a.Echo.Shutdown(shutdownCtx)
}

func (a *App) postCount(ctx context.Context) int {
	blog, err := a.Library.Current(ctx)
	if err != nil {
		return 0
	}
	return blog.Len()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets take precedence over the site's static directory.
	e.FileFS(staticPrefix+"/folio.css", "embedded/folio.css", EmbeddedAssets)
	e.StaticFS(staticPrefix, a.staticFS)
	e.FileFS("/favicon.svg", "favicon.svg", a.staticFS)
	e.FileFS("/robots.txt", "robots.txt", a.staticFS)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/", handleRootRedirect)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:category/", a.handleCategory)
	e.GET("/blog/:category/:slug/", a.handlePost)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
