package restapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
)

func (s *Server) registerHoneyRoutes(g *echo.Group) {
	g.GET("/honeys", s.listHoneys)
	g.GET("/honeys/featured", s.featuredHoneys)
	g.GET("/honeys/count", s.countHoneys)
	g.GET("/honeys/:slug", s.getHoney)
	g.GET("/honeys/:slug/similar", s.similarHoneys)
}

func (s *Server) listHoneys(c echo.Context) error {
	filters := catalog.HoneyFilters{
		Search:        c.QueryParam("search"),
		Origins:       queryStrings(c, "origin"),
		FloralSources: queryStrings(c, "floralSource"),
		Types:         queryStrings(c, "type"),
	}
	if v, present := queryFloat(c, "priceMin"); present {
		filters.PriceMin = &v
	}
	if v, present := queryFloat(c, "priceMax"); present {
		filters.PriceMax = &v
	}

	pr, err := queryPageRequest(c, catalog.DefaultBrowseSize, "name", catalog.HoneySortFields)
	if err != nil {
		return failFromErr(c, err)
	}

	page, err := s.honeys.Browse(c.Request().Context(), filters, pr)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, page)
}

func (s *Server) featuredHoneys(c echo.Context) error {
	rows, err := s.honeys.FindFeatured(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func (s *Server) countHoneys(c echo.Context) error {
	total, err := s.honeys.Count(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, map[string]int64{"count": total})
}

func (s *Server) getHoney(c echo.Context) error {
	dto, err := s.honeys.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}

func (s *Server) similarHoneys(c echo.Context) error {
	limit, err := queryInt(c, "limit", catalog.DefaultSimilarLimit)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	rows, err := s.honeys.FindSimilar(c.Request().Context(), c.Param("slug"), limit)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}
