package restapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

type restError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, restError{Code: code, Message: message, Details: details})
}

// failFromErr maps catalog errors onto the wire taxonomy. Anything the
// taxonomy does not cover is a 500 and gets logged.
func failFromErr(c echo.Context, err error) error {
	var filterErr *catalog.InvalidFilterValueError
	if errors.As(err, &filterErr) {
		return fail(c, http.StatusBadRequest, "INVALID_FILTER_VALUE", filterErr.Error(), nil)
	}
	var sortErr *catalog.InvalidSortFieldError
	if errors.As(err, &sortErr) {
		return fail(c, http.StatusBadRequest, "INVALID_SORT_FIELD", sortErr.Error(), nil)
	}
	if errors.Is(err, catalog.ErrInvalidPageRequest) {
		return fail(c, http.StatusBadRequest, "INVALID_PAGE_REQUEST", err.Error(), nil)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
	}
	zap.L().Error("request failed",
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))
	return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error", nil)
}

// queryParamOr reads a string query parameter with a default.
func queryParamOr(c echo.Context, name, def string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return def
}

// queryInt reads an integer query parameter. An absent parameter yields
// def; an unparsable one is an error naming the parameter.
func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer", name)
	}
	return i, nil
}

// queryPageSize reads the page/size pair. Unparsable values are invalid
// page requests.
func queryPageSize(c echo.Context, defSize int) (int, int, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return 0, 0, errors.Wrap(catalog.ErrInvalidPageRequest, err.Error())
	}
	size, err := queryInt(c, "size", defSize)
	if err != nil {
		return 0, 0, errors.Wrap(catalog.ErrInvalidPageRequest, err.Error())
	}
	return page, size, nil
}

// queryPageRequest builds a PageRequest from the page/size/sort query
// parameters.
func queryPageRequest(c echo.Context, defSize int, defSort string, sortable map[string]string) (catalog.PageRequest, error) {
	page, size, err := queryPageSize(c, defSize)
	if err != nil {
		return catalog.PageRequest{}, err
	}
	return catalog.NewPageRequest(page, size, queryParamOr(c, "sort", defSort), sortable)
}

// queryFloat reads a float query parameter. The second return reports
// whether the parameter was present and parsable.
func queryFloat(c echo.Context, name string) (float64, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

func queryBool(c echo.Context, name string, def bool) bool {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	return cast.ToBool(v)
}

// queryStrings collects a multi-valued query parameter. Repeated
// parameters and comma-separated values are both accepted.
func queryStrings(c echo.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
