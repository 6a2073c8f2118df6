// Package media reads image metadata from the content source so views can
// emit width and height attributes for cover images.
package media

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// MaxDisplayWidth is the widest a cover image is laid out.
const MaxDisplayWidth = 800

// ErrRemote is returned for image references that do not live in the
// local filesystem.
var ErrRemote = errors.New("media: remote image")

// Dimensions is the pixel size and encoding of an image.
type Dimensions struct {
	Width  int
	Height int
	Format string
}

// Fit scales d down proportionally so it is at most maxWidth wide.
func (d Dimensions) Fit(maxWidth int) Dimensions {
	if maxWidth <= 0 || d.Width <= maxWidth {
		return d
	}
	d.Height = d.Height * maxWidth / d.Width
	d.Width = maxWidth
	return d
}

// Probe decodes only the header of the image at name.
func Probe(fsys fs.FS, name string) (Dimensions, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Dimensions{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Resolve maps an image reference from frontmatter (e.g. "/public/covers/a.png")
// to a name inside a filesystem rooted at the static directory. prefix is the
// URL path the static directory is served under.
func Resolve(ref, prefix string) (string, error) {
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") {
		return "", fmt.Errorf("%w: %s", ErrRemote, ref)
	}
	prefix = "/" + strings.Trim(prefix, "/") + "/"
	if !strings.HasPrefix(ref, prefix) {
		return "", fmt.Errorf("media: %q is outside %s", ref, prefix)
	}
	name := path.Clean(strings.TrimPrefix(ref, prefix))
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("media: invalid path %q", ref)
	}
	return name, nil
}

// Prober memoizes Probe results for one static filesystem.
type Prober struct {
	fsys   fs.FS
	prefix string

	mu   sync.RWMutex
	seen map[string]probeResult
}

type probeResult struct {
	dims Dimensions
	err  error
}

// NewProber creates a Prober over the static filesystem served at prefix.
func NewProber(fsys fs.FS, prefix string) *Prober {
	return &Prober{fsys: fsys, prefix: prefix, seen: make(map[string]probeResult)}
}

// Lookup returns the dimensions of the image referenced by ref.
func (p *Prober) Lookup(ref string) (Dimensions, error) {
	p.mu.RLock()
	r, ok := p.seen[ref]
	p.mu.RUnlock()
	if ok {
		return r.dims, r.err
	}

	name, err := Resolve(ref, p.prefix)
	if err == nil {
		r.dims, r.err = Probe(p.fsys, name)
	} else {
		r.err = err
	}

	p.mu.Lock()
	p.seen[ref] = r
	p.mu.Unlock()
	return r.dims, r.err
}

// Reset forgets every memoized result.
func (p *Prober) Reset() {
	p.mu.Lock()
	p.seen = make(map[string]probeResult)
	p.mu.Unlock()
}
