package http

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/cras-office/agenda/docs"
	"github.com/cras-office/agenda/internal/core/ports"
	"github.com/cras-office/agenda/internal/infrastructure/http/handlers"
)

// RegisterOps adds the operational routes (no auth required) to e: health
// probes, Prometheus metrics and the swagger UI. checks names the
// dependencies probed by the readiness endpoint.
func RegisterOps(e *echo.Echo, checks map[string]ports.Pinger) {
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(checks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
