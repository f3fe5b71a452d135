package catalog

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by repositories when a slug or id lookup misses.
// Whether a miss is a client-visible 404 or an empty result is decided by
// the calling service.
var ErrNotFound = errors.New("record not found")

// ErrInvalidPageRequest is returned when page or size is out of range.
var ErrInvalidPageRequest = errors.New("invalid page request")

// InvalidFilterValueError reports an enum filter parameter that does not
// resolve to a known vocabulary code.
type InvalidFilterValueError struct {
	Field string
	Value string
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("invalid value %q for filter %q", e.Value, e.Field)
}

// InvalidSortFieldError reports a sort field outside the entity's allow-list.
type InvalidSortFieldError struct {
	Field string
}

func (e *InvalidSortFieldError) Error() string {
	return fmt.Sprintf("unsupported sort field %q", e.Field)
}
