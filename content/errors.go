package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested post slug does not exist.
	ErrNotFound = errors.New("content: post not found")
	// ErrUnknownCategory is returned when a category slug is not in the catalog.
	ErrUnknownCategory = errors.New("content: unknown category")
	// ErrCategoryIntegrity marks a post that references a category missing from the catalog.
	ErrCategoryIntegrity = errors.New("content: post references unknown category")
	// ErrDuplicateSlug marks a post whose slug was already claimed in the same load cycle.
	ErrDuplicateSlug = errors.New("content: duplicate post slug")
	// ErrMissingFrontmatter marks a document with no metadata block.
	ErrMissingFrontmatter = errors.New("content: missing frontmatter")
)

// MalformedDocumentError reports a single document that was skipped during a
// load cycle. It never aborts the rest of the batch.
type MalformedDocumentError struct {
	Path string
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document %s: %v", e.Path, e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// Reason returns a short label for the failure, used as a metrics label.
func (e *MalformedDocumentError) Reason() string {
	switch {
	case errors.Is(e.Err, ErrCategoryIntegrity):
		return "category"
	case errors.Is(e.Err, ErrDuplicateSlug):
		return "duplicate_slug"
	case errors.Is(e.Err, ErrMissingFrontmatter):
		return "missing_frontmatter"
	case errors.Is(e.Err, errUnreadable):
		return "unreadable"
	default:
		return "invalid_metadata"
	}
}

var errUnreadable = errors.New("unreadable")
