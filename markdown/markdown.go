// Package markdown renders post bodies to HTML and estimates reading time.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"math"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 225

// Result is a rendered body.
type Result struct {
	HTML               string
	ReadingTimeMinutes int
}

// Renderer converts markdown to an HTML fragment. Bodies are trusted,
// author-owned content: raw HTML passes through and nothing is sanitized.
// Do not feed it user-submitted text.
//
// A Renderer holds no per-call state and is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

type options struct {
	typographer bool
	hardWraps   bool
}

// Option configures a Renderer.
type Option func(*options)

// WithTypographer turns straight quotes and dashes into typographic ones.
func WithTypographer() Option {
	return func(o *options) { o.typographer = true }
}

// WithHardWraps renders single newlines inside paragraphs as <br>.
func WithHardWraps() Option {
	return func(o *options) { o.hardWraps = true }
}

// NewRenderer builds a Renderer with GitHub-flavoured markdown, footnotes and
// heading IDs.
func NewRenderer(opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	exts := []goldmark.Extender{extension.GFM, extension.Footnote}
	if o.typographer {
		exts = append(exts, extension.Typographer)
	}
	rendererOpts := []renderer.Option{gmhtml.WithUnsafe()}
	if o.hardWraps {
		rendererOpts = append(rendererOpts, gmhtml.WithHardWraps())
	}

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(exts...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(rendererOpts...),
		),
	}
}

// Render converts raw to HTML and computes its reading time.
func (r *Renderer) Render(raw string) (Result, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(raw), &buf); err != nil {
		return Result{}, fmt.Errorf("markdown render: %w", err)
	}
	return Result{
		HTML:               buf.String(),
		ReadingTimeMinutes: ReadingTime(raw),
	}, nil
}

// WordCount returns the number of whitespace-delimited tokens in raw.
func WordCount(raw string) int {
	return len(strings.Fields(raw))
}

// ReadingTime returns ceil(words/WordsPerMinute) minutes, at least 1 for any
// body with a word in it and 0 for an empty one.
func ReadingTime(raw string) int {
	words := WordCount(raw)
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// HTML returns a templ.Component that writes already-rendered HTML verbatim.
func HTML(rendered string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, rendered)
		return err
	})
}

// SafeURL validates and escapes a URL for use in an HTML attribute. Relative
// paths and http, https, mailto and tel URLs are allowed; anything else
// yields "".
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
