// Package pagination slices ordered result sets into fixed-size,
// 1-indexed pages. Out-of-range page numbers are clamped rather than
// rejected: below 1 yields the first page, beyond the end yields the last.
package pagination

// DefaultPageSize is the page size used when a caller passes a
// non-positive size.
const DefaultPageSize = 10

// PageInfo describes the returned page so callers can render navigation.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// HasNext reports whether a page after the current one exists.
func (p PageInfo) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether a page before the current one exists.
func (p PageInfo) HasPrev() bool {
	return p.Page > 1
}

// totalPages returns the number of pages for total items. An empty set
// still has one (empty) page so clamping always has a valid target.
func totalPages(total int64, size int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	return pages
}

// clamp snaps page into [1, pages].
func clamp(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// Window computes the clamped offset and limit for fetching page from a
// store that already knows the total item count. It is the counterpart of
// Paginate for repository-backed sequences.
func Window(total int64, page, size int) (offset, limit int, info PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := totalPages(total, size)
	page = clamp(page, pages)

	info = PageInfo{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
	}
	return (page - 1) * size, size, info
}

// Paginate returns the requested page of an ordered in-memory sequence.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	offset, limit, info := Window(int64(len(items)), page, size)

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	if offset > len(items) {
		offset = len(items)
	}
	return items[offset:end], info
}
