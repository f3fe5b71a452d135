package restapi

import (
	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
)

func (s *Server) registerFilterRoutes(g *echo.Group) {
	g.GET("/filters/options", s.filterOptions)
}

// filterOptions serves the controlled vocabularies for browse facets.
// The payload is static, so no storage round trip happens here.
func (s *Server) filterOptions(c echo.Context) error {
	return ok(c, catalog.FilterOptions())
}
