package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "purchasing/internal/generated/docs" // registers the document served at /swagger/doc.json
	"purchasing/internal/generated/servers"
	"purchasing/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds what NewRouter wires together.
type RouterConfig struct {
	Server  *Server
	Auth    *Authenticator
	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// Health reports whether dependencies are reachable. Nil means always healthy.
	Health func(ctx context.Context) error
}

// NewRouter builds the echo instance: API routes, /health, /metrics and /swagger.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger.With("component", "http_access")))
	if cfg.Metrics != nil {
		e.Use(requestMetrics(cfg.Metrics))
	}
	e.Use(collectNotifications())
	e.Use(cfg.Auth.Middleware())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		if cfg.Health != nil {
			if err := cfg.Health(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, cfg.Server)
	return e, nil
}
