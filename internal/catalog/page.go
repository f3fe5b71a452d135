package catalog

import "github.com/pkg/errors"

// Default page sizes per endpoint family.
const (
	DefaultBrowseSize      = 24
	DefaultCitySourcesSize = 12
	DefaultUpcomingLimit   = 6
	DefaultSimilarLimit    = 4
)

// Sortable field allow-lists, mapping API sort names to storage columns.
// Pre-validating here fails fast with a clear error instead of surfacing
// a storage-layer failure at execution time.
var (
	HoneySortFields = map[string]string{
		"name":      "name",
		"brand":     "brand",
		"origin":    "origin",
		"priceMin":  "price_min",
		"priceMax":  "price_max",
		"createdAt": "created_at",
	}
	LocalSourceSortFields = map[string]string{
		"name":      "name",
		"city":      "city",
		"state":     "state",
		"createdAt": "created_at",
	}
	EventSortFields = map[string]string{
		"startDate": "start_date",
		"name":      "name",
		"createdAt": "created_at",
	}
)

// PageRequest is a normalized pagination request: zero-based page index,
// positive page size and a resolved sort column. Sorting is ascending only.
type PageRequest struct {
	Page       int
	Size       int
	SortColumn string
}

// NewPageRequest validates pagination inputs and resolves the sort field
// against the entity's allow-list.
func NewPageRequest(page, size int, sort string, sortable map[string]string) (PageRequest, error) {
	if page < 0 {
		return PageRequest{}, errors.Wrapf(ErrInvalidPageRequest, "page %d", page)
	}
	if size < 1 {
		return PageRequest{}, errors.Wrapf(ErrInvalidPageRequest, "size %d", size)
	}
	column, ok := sortable[sort]
	if !ok {
		return PageRequest{}, &InvalidSortFieldError{Field: sort}
	}
	return PageRequest{Page: page, Size: size, SortColumn: column}, nil
}

// Offset returns the record offset for storage-delegated pagination.
func (pr PageRequest) Offset() int {
	return pr.Page * pr.Size
}

// Page is the result envelope for paginated queries. TotalElements counts
// matches across all pages, not just the current one.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

// NewPage builds a page envelope, never with a nil content slice.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	return Page[T]{Content: content, Page: page, Size: size, TotalElements: total}
}
