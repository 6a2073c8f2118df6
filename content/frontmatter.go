package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-slug"
)

// dateLayouts are tried in order when parsing the frontmatter date.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// metadata is the frontmatter schema. YAML, TOML and JSON headers decode into
// the same struct.
type metadata struct {
	Title          string `yaml:"title" toml:"title" json:"title"`
	Subtitle       string `yaml:"subtitle" toml:"subtitle" json:"subtitle"`
	Slug           string `yaml:"slug" toml:"slug" json:"slug"`
	Category       string `yaml:"category" toml:"category" json:"category"`
	Date           dateValue `yaml:"date" toml:"date" json:"date"`
	Excerpt        string `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	CoverImage     string `yaml:"coverImage" toml:"coverImage" json:"coverImage"`
	SEODescription string `yaml:"seoDescription" toml:"seoDescription" json:"seoDescription"`
}

// dateValue holds the frontmatter date as text. TOML decodes bare dates
// (date = 2023-11-05) to time.Time before they reach the field.
type dateValue string

// UnmarshalTOML implements toml.Unmarshaler.
func (d *dateValue) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*d = dateValue(v)
	case time.Time:
		h, m, s := v.Clock()
		if h == 0 && m == 0 && s == 0 && v.Nanosecond() == 0 {
			*d = dateValue(v.Format(DateLayout))
		} else {
			*d = dateValue(v.Format(time.RFC3339))
		}
	default:
		return fmt.Errorf("date: unsupported TOML value of type %T", data)
	}
	return nil
}

func (m *metadata) trim() {
	m.Title = strings.TrimSpace(m.Title)
	m.Subtitle = strings.TrimSpace(m.Subtitle)
	m.Slug = strings.TrimSpace(m.Slug)
	m.Category = strings.TrimSpace(m.Category)
	m.Date = dateValue(strings.TrimSpace(string(m.Date)))
	m.Excerpt = strings.TrimSpace(m.Excerpt)
	m.CoverImage = strings.TrimSpace(m.CoverImage)
	m.SEODescription = strings.TrimSpace(m.SEODescription)
}

// Validate checks required fields and formats. Category membership is
// checked separately against the catalog.
func (m metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Subtitle, validation.Required),
		validation.Field(&m.Slug, validation.Required, validation.By(validSlug)),
		validation.Field(&m.Category, validation.Required),
		validation.Field(&m.Date, validation.Required, validation.By(validDate)),
		validation.Field(&m.Excerpt, validation.Required),
		validation.Field(&m.CoverImage, validation.When(m.CoverImage != "", is.RequestURI)),
	)
}

func validSlug(value any) error {
	s, _ := value.(string)
	if s != "" && !slug.IsValid(s) {
		return validation.NewError("validation_slug_invalid", "must be lowercase letters, digits and hyphens")
	}
	return nil
}

func validDate(value any) error {
	d, _ := value.(dateValue)
	s := string(d)
	if s == "" {
		return nil
	}
	if _, err := parseDate(s); err != nil {
		return validation.NewError("validation_date_invalid", "must be a valid date (YYYY-MM-DD)")
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ParseDocument splits source into frontmatter and body and validates the
// metadata. The category is not resolved here.
func ParseDocument(path string, source []byte) (Post, error) {
	var meta metadata
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Post{}, ErrMissingFrontmatter
		}
		return Post{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	meta.trim()
	if err := meta.Validate(); err != nil {
		return Post{}, err
	}
	date, err := parseDate(string(meta.Date))
	if err != nil {
		return Post{}, err
	}
	return Post{
		Slug:           meta.Slug,
		Title:          meta.Title,
		Subtitle:       meta.Subtitle,
		Category:       meta.Category,
		Date:           date,
		Excerpt:        meta.Excerpt,
		CoverImage:     meta.CoverImage,
		SEODescription: meta.SEODescription,
		RawBody:        string(body),
		SourcePath:     path,
	}, nil
}
