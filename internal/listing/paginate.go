package listing

// Fixed page sizes: public browse pages show 12 items, admin tables 10.
const (
	PublicPageSize = 12
	AdminPageSize  = 10
)

// TotalPages is max(1, ceil(count/pageSize)): an empty result still renders
// one (empty) page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PaginateSlice returns the 1-based page [(page-1)*size, page*size) of items
// plus the total page count. Out-of-range pages yield an empty slice;
// navigation controls are expected to keep them unreachable.
func PaginateSlice[T any](items []T, page, pageSize int) ([]T, int) {
	totalPages := TotalPages(len(items), pageSize)

	if page < 1 || pageSize < 1 {
		return []T{}, totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
