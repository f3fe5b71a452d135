package restapi

import (
	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
)

func (s *Server) registerCityRoutes(g *echo.Group) {
	g.GET("/cities", s.listCities)
	g.GET("/cities/count", s.countCities)
	g.GET("/cities/:slug", s.getCity)
	g.GET("/cities/:slug/sources", s.citySources)
	g.GET("/cities/:slug/events", s.cityEvents)
}

func (s *Server) listCities(c echo.Context) error {
	rows, err := s.cities.ListValidated(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func (s *Server) countCities(c echo.Context) error {
	total, err := s.cities.CountValidated(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, map[string]int64{"count": total})
}

func (s *Server) getCity(c echo.Context) error {
	dto, err := s.cities.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}

func (s *Server) citySources(c echo.Context) error {
	radius := catalog.DefaultNearbyRadiusMiles
	if r, present := queryFloat(c, "radius"); present {
		radius = r
	}
	pageNum, size, err := queryPageSize(c, catalog.DefaultCitySourcesSize)
	if err != nil {
		return failFromErr(c, err)
	}

	page, err := s.cities.NearbySources(c.Request().Context(), c.Param("slug"), radius,
		pageNum, size)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, page)
}

func (s *Server) cityEvents(c echo.Context) error {
	rows, err := s.cities.CityEvents(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}
