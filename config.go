package folio

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr           string // Listen address (default ":3000")
	ContentDir     string // Markdown posts (default "content")
	CategoriesFile string // Optional YAML category list; built-in categories when empty
	StaticDir      string // Static assets served under /public (default "public")

	PageSize       int           // Posts per list page (default 10)
	ReloadInterval time.Duration // Rebuild the index when older than this; 0 loads once
	RenderCache    bool          // Memoize rendered post bodies
	HardWraps      bool          // Render newlines inside paragraphs as <br>

	LogLevel  string // debug, info, warn, error (default "info")
	LogFormat string // json or text (default "json")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PageSize == 0 {
		c.PageSize = content.DefaultPageSize
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
}

// ConfigFromEnv reads a SiteConfig from the environment. Unset keys keep
// their defaults.
func ConfigFromEnv() SiteConfig {
	cfg := SiteConfig{
		Name:           EnvOr("SITE_NAME", ""),
		URL:            EnvOr("SITE_URL", ""),
		Description:    EnvOr("SITE_DESCRIPTION", ""),
		Author:         EnvOr("SITE_AUTHOR", ""),
		Addr:           EnvOr("ADDR", ""),
		ContentDir:     EnvOr("CONTENT_DIR", ""),
		CategoriesFile: EnvOr("CATEGORIES_FILE", ""),
		StaticDir:      EnvOr("STATIC_DIR", ""),
		PageSize:       envInt("PAGE_SIZE", 0),
		ReloadInterval: envDuration("RELOAD_INTERVAL", 0),
		RenderCache:    envBool("RENDER_CACHE", true),
		HardWraps:      envBool("HARD_WRAPS", false),
		LogLevel:       EnvOr("LOG_LEVEL", ""),
		LogFormat:      EnvOr("LOG_FORMAT", ""),
	}
	cfg.setDefaults()
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Validate reports configuration values folio cannot run with.
func (c SiteConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.URL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.PageSize, validation.Min(1)),
		validation.Field(&c.ReloadInterval, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&c.LogFormat, validation.In("json", "text")),
	)
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http or https URL")
	}
	return nil
}

// Catalog loads the categories named by CategoriesFile, or the built-in
// categories when it is empty.
func (c SiteConfig) Catalog() (*content.Catalog, error) {
	if c.CategoriesFile == "" {
		return content.DefaultCatalog(), nil
	}
	dir, name := filepath.Split(c.CategoriesFile)
	if dir == "" {
		dir = "."
	}
	return content.LoadCatalog(os.DirFS(dir), name)
}

func (c SiteConfig) views() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after folio's own routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithContentFS reads posts from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// WithStaticFS serves static assets from fsys instead of Config.StaticDir.
func WithStaticFS(fsys fs.FS) Option {
	return func(a *App) {
		a.staticFS = fsys
	}
}

// WithCatalog uses catalog instead of Config.CategoriesFile.
func WithCatalog(catalog *content.Catalog) Option {
	return func(a *App) {
		a.catalog = catalog
	}
}
