// Package paginate slices an in-memory collection into display pages.
package paginate

// Page is the visible window over a collection for one page index.
type Page[T any] struct {
	Visible    []T
	TotalPages int
	Page       int
}

// Paginate returns the visible slice for a 1-based page index. The index is
// not clamped: a page beyond TotalPages yields an empty slice, which is what
// happens after deleting the last row of the last page.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		return Page[T]{Visible: nil, TotalPages: 0, Page: page}
	}

	total := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= len(items) {
		return Page[T]{Visible: []T{}, TotalPages: total, Page: page}
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{Visible: items[start:end], TotalPages: total, Page: page}
}
