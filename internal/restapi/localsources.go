package restapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
)

func (s *Server) registerLocalSourceRoutes(g *echo.Group) {
	g.GET("/local-sources", s.listLocalSources)
	g.GET("/local-sources/map", s.mapLocalSources)
	g.GET("/local-sources/nearby", s.nearbyLocalSources)
	g.GET("/local-sources/count", s.countLocalSources)
	g.GET("/local-sources/slug/:slug", s.getLocalSourceBySlug)
	g.GET("/local-sources/:id", s.getLocalSource)
}

func (s *Server) listLocalSources(c echo.Context) error {
	filters := catalog.LocalSourceFilters{
		Search:      c.QueryParam("search"),
		SourceTypes: queryStrings(c, "sourceType"),
		States:      queryStrings(c, "state"),
		ActiveOnly:  queryBool(c, "activeOnly", true),
	}

	pr, err := queryPageRequest(c, catalog.DefaultBrowseSize, "name", catalog.LocalSourceSortFields)
	if err != nil {
		return failFromErr(c, err)
	}

	page, err := s.sources.Browse(c.Request().Context(), filters, pr)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, page)
}

func (s *Server) mapLocalSources(c echo.Context) error {
	rows, err := s.sources.FindAllForMap(c.Request().Context(),
		queryStrings(c, "sourceType"),
		queryBool(c, "activeOnly", true))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func (s *Server) nearbyLocalSources(c echo.Context) error {
	lat, latOk := queryFloat(c, "lat")
	lng, lngOk := queryFloat(c, "lng")
	if !latOk || !lngOk {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "lat and lng are required", nil)
	}
	radius := catalog.DefaultNearbyRadiusMiles
	if r, present := queryFloat(c, "radius"); present {
		radius = r
	}
	pageNum, size, err := queryPageSize(c, catalog.DefaultBrowseSize)
	if err != nil {
		return failFromErr(c, err)
	}

	page, err := s.sources.FindNearby(c.Request().Context(), lat, lng, radius,
		queryStrings(c, "sourceType"), pageNum, size)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, page)
}

func (s *Server) countLocalSources(c echo.Context) error {
	total, err := s.sources.Count(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, map[string]int64{"count": total})
}

func (s *Server) getLocalSourceBySlug(c echo.Context) error {
	dto, err := s.sources.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}

func (s *Server) getLocalSource(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "invalid source id", nil)
	}
	dto, err := s.sources.FindByID(c.Request().Context(), id)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}
