package content

// DefaultPageSize is used when a caller passes a page size below 1.
const DefaultPageSize = 10

// Page is one slice of an ordered sequence.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// Paginate returns page number page (1-based) of items. TotalPages is
// ceil(len(items)/pageSize). A page outside [1, TotalPages] has no items
// and is not an error: page numbers usually come from query strings.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Number:     page,
		Size:       pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
		TotalItems: total,
	}
	if page < 1 || page > p.TotalPages {
		return p
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	p.Items = items[start:end:end]
	return p
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1 && p.TotalPages > 0
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return p.Number >= 1 && p.Number < p.TotalPages
}

// Prev returns the previous page number. From past the end it is the last page.
func (p Page[T]) Prev() int {
	if p.Number > p.TotalPages {
		return p.TotalPages
	}
	return p.Number - 1
}

// Next returns the next page number.
func (p Page[T]) Next() int { return p.Number + 1 }

// Window returns at most limit page numbers around the current page,
// shifted left when the current page is near the end.
func (p Page[T]) Window(limit int) []int {
	if p.TotalPages <= 1 || limit < 1 {
		return nil
	}
	current := min(max(p.Number, 1), p.TotalPages)
	start := max(1, current-limit/2)
	end := min(start+limit-1, p.TotalPages)
	if end-start+1 < limit {
		start = max(1, end-limit+1)
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
