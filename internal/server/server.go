package server

import (
	"context"
	"time"

	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/services"
	"github.com/Tomas-vilte/MateReview/internal/version"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server expone el pipeline de reviews por HTTP.
type Server struct {
	echo    *echo.Echo
	service *services.ReviewService
	trans   *i18n.Translations
}

// New crea el servidor HTTP con las rutas registradas.
func New(service *services.ReviewService, trans *i18n.Translations) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger())

	s := &Server{
		echo:    e,
		service: service,
		trans:   trans,
	}

	e.GET("/", s.handleIndex)
	e.POST("/review", s.handleReview)
	e.POST("/upload", s.handleUpload)

	return s
}

// Start levanta el listener. Bloquea hasta que el servidor se apague.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown apaga el servidor drenando las requests en vuelo.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo expone el router, para tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// requestLogger canaliza el log de requests de echo hacia slog.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info(c.Request().Context(), "request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}

func (s *Server) handleIndex(c echo.Context) error {
	return c.JSON(200, map[string]string{
		"service": "MateReview",
		"version": version.Version,
		"status":  "ok",
	})
}
