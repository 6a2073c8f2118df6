package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/eringen/folio/internal/logger"
	"github.com/eringen/folio/internal/metrics"
)

var markdownExts = map[string]struct{}{
	".md":       {},
	".markdown": {},
}

// LoadResult is the outcome of one pass over the content source.
type LoadResult struct {
	Posts    []Post
	Problems []*MalformedDocumentError
}

// Loader reads markdown documents from a filesystem.
type Loader struct {
	fsys    fs.FS
	root    string
	catalog *Catalog
	log     *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithRoot restricts the walk to a sub-directory of the filesystem (default ".").
func WithRoot(root string) LoaderOption {
	return func(l *Loader) {
		l.root = path.Clean(root)
	}
}

// WithLogger sets the logger used for per-document diagnostics.
func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a Loader over fsys that resolves categories against catalog.
func NewLoader(fsys fs.FS, catalog *Catalog, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:    fsys,
		root:    ".",
		catalog: catalog,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Default()
	}
	return l
}

// Load walks the source in lexical order and parses every markdown document.
// A bad document is recorded in Problems and skipped; only a failure to
// enumerate the source, or a cancelled context, returns an error.
func (l *Loader) Load(ctx context.Context) (LoadResult, error) {
	var res LoadResult
	seen := make(map[string]string)

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == l.root {
				return err
			}
			res.Problems = append(res.Problems, l.reject(p, fmt.Errorf("%w: %v", errUnreadable, err)))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		name := d.Name()
		if d.IsDir() {
			if p != l.root && hidden(name) {
				return fs.SkipDir
			}
			return nil
		}
		if hidden(name) {
			return nil
		}
		if _, ok := markdownExts[strings.ToLower(path.Ext(name))]; !ok {
			return nil
		}

		post, perr := l.loadFile(p)
		if perr == nil {
			if first, dup := seen[post.Slug]; dup {
				perr = fmt.Errorf("%w: %q already used by %s", ErrDuplicateSlug, post.Slug, first)
			}
		}
		if perr != nil {
			res.Problems = append(res.Problems, l.reject(p, perr))
			return nil
		}
		seen[post.Slug] = p
		res.Posts = append(res.Posts, post)
		return nil
	})
	if err != nil {
		return LoadResult{}, fmt.Errorf("load content from %s: %w", l.root, err)
	}
	return res, nil
}

func (l *Loader) loadFile(p string) (Post, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %v", errUnreadable, err)
	}
	post, err := ParseDocument(p, data)
	if err != nil {
		return Post{}, err
	}
	if !l.catalog.Has(post.Category) {
		return Post{}, fmt.Errorf("%w: %q", ErrCategoryIntegrity, post.Category)
	}
	return post, nil
}

func (l *Loader) reject(p string, err error) *MalformedDocumentError {
	merr := &MalformedDocumentError{Path: p, Err: err}
	l.log.Warn("skipping document",
		slog.String("path", p),
		slog.String("reason", merr.Reason()),
		slog.String("error", err.Error()),
	)
	metrics.DocumentsRejected.WithLabelValues(merr.Reason()).Inc()
	return merr
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
