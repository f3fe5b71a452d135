package catalog

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequestResolvesSortColumn(t *testing.T) {
	pr, err := NewPageRequest(2, 24, "priceMin", HoneySortFields)
	require.NoError(t, err)
	assert.Equal(t, 2, pr.Page)
	assert.Equal(t, 24, pr.Size)
	assert.Equal(t, "price_min", pr.SortColumn)
	assert.Equal(t, 48, pr.Offset())
}

func TestNewPageRequestRejectsNegativePage(t *testing.T) {
	_, err := NewPageRequest(-1, 24, "name", HoneySortFields)
	assert.True(t, errors.Is(err, ErrInvalidPageRequest))
}

func TestNewPageRequestRejectsZeroSize(t *testing.T) {
	_, err := NewPageRequest(0, 0, "name", HoneySortFields)
	assert.True(t, errors.Is(err, ErrInvalidPageRequest))
}

func TestNewPageRequestRejectsUnknownSortField(t *testing.T) {
	_, err := NewPageRequest(0, 24, "priceAsc; DROP TABLE", HoneySortFields)
	var sortErr *InvalidSortFieldError
	require.True(t, errors.As(err, &sortErr))
	assert.Equal(t, "priceAsc; DROP TABLE", sortErr.Field)
}

func TestNewPageNeverReturnsNilContent(t *testing.T) {
	page := NewPage[HoneyDTO](nil, 0, 24, 0)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
}
