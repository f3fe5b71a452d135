package restapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
)

func (s *Server) registerEventRoutes(g *echo.Group) {
	g.GET("/events", s.listEvents)
	g.GET("/events/upcoming", s.upcomingEvents)
	g.GET("/events/calendar", s.calendarEvents)
	g.GET("/events/count", s.countEvents)
	g.GET("/events/slug/:slug", s.getEventBySlug)
	g.GET("/events/:id", s.getEvent)
}

func (s *Server) listEvents(c echo.Context) error {
	filters := catalog.EventFilters{
		Search:     c.QueryParam("search"),
		EventTypes: queryStrings(c, "eventType"),
		States:     queryStrings(c, "state"),
		ActiveOnly: queryBool(c, "activeOnly", true),
	}
	if v := c.QueryParam("fromDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "fromDate must be formatted YYYY-MM-DD", nil)
		}
		filters.FromDate = &t
	}
	if v := c.QueryParam("toDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "toDate must be formatted YYYY-MM-DD", nil)
		}
		filters.ToDate = &t
	}

	pr, err := queryPageRequest(c, catalog.DefaultBrowseSize, "startDate", catalog.EventSortFields)
	if err != nil {
		return failFromErr(c, err)
	}

	page, err := s.events.Browse(c.Request().Context(), filters, pr)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, page)
}

func (s *Server) upcomingEvents(c echo.Context) error {
	limit, err := queryInt(c, "limit", catalog.DefaultUpcomingLimit)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	rows, err := s.events.FindUpcoming(c.Request().Context(), limit)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func (s *Server) calendarEvents(c echo.Context) error {
	now := time.Now()
	year, err := queryInt(c, "year", now.Year())
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	month, err := queryInt(c, "month", int(now.Month()))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
	}
	if month < 1 || month > 12 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "month must be between 1 and 12", nil)
	}

	rows, err := s.events.FindByMonth(c.Request().Context(), year, time.Month(month))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, rows)
}

func (s *Server) countEvents(c echo.Context) error {
	total, err := s.events.Count(c.Request().Context())
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, map[string]int64{"count": total})
}

func (s *Server) getEventBySlug(c echo.Context) error {
	dto, err := s.events.FindBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}

func (s *Server) getEvent(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "invalid event id", nil)
	}
	dto, err := s.events.FindByID(c.Request().Context(), id)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, dto)
}
