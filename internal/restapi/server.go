// Package restapi exposes the catalog over HTTP with echo.
package restapi

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rawhoneyguide/honeyexplorer/config"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"go.uber.org/zap"
)

// Server wires the catalog services to HTTP routes.
type Server struct {
	cfg        *config.AppConfig
	echo       *echo.Echo
	honeys     *catalog.HoneyService
	sources    *catalog.LocalSourceService
	events     *catalog.EventService
	cities     *catalog.CityService
	newsletter *catalog.NewsletterService
}

func NewServer(
	cfg *config.AppConfig,
	honeys *catalog.HoneyService,
	sources *catalog.LocalSourceService,
	events *catalog.EventService,
	cities *catalog.CityService,
	newsletter *catalog.NewsletterService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger())

	s := &Server{
		cfg:        cfg,
		echo:       e,
		honeys:     honeys,
		sources:    sources,
		events:     events,
		cities:     cities,
		newsletter: newsletter,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")
	s.registerHoneyRoutes(api)
	s.registerLocalSourceRoutes(api)
	s.registerEventRoutes(api)
	s.registerCityRoutes(api)
	s.registerFilterRoutes(api)
	s.registerNewsletterRoutes(api)

	s.echo.GET("/sitemap.xml", s.sitemap)
}

// Echo exposes the underlying engine for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start blocks serving HTTP until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("http server listening", zap.String("addr", addr))
	return s.echo.Start(addr)
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	}
}
