package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/api/handler"
	"github.com/cras-office/agenda/internal/api/middleware"
	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// Services are the Domain Access Layer operations exposed over HTTP.
type Services struct {
	Auth         ports.AuthService
	Users        ports.UserService
	Appointments ports.AppointmentService
	Reports      ports.ReportService
	Extraction   ports.ExtractionService
}

// Options configure the router.
type Options struct {
	JWTSecret string
	Settings  handler.Settings
	Log       zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the
	// Prometheus default registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all API routes
// registered. Every /v1 route passes through the page gate.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "cras",
		Registerer: opts.Registerer,
	}))
	e.Use(echomiddleware.BodyLimit("11M"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.Users)
	appointmentHandler := handler.NewAppointmentHandler(svc.Appointments)
	reportHandler := handler.NewReportHandler(svc.Reports)
	extractionHandler := handler.NewExtractionHandler(svc.Extraction)
	settingsHandler := handler.NewSettingsHandler(opts.Settings)
	auth := middleware.Auth(opts.JWTSecret, svc.Auth)
	page := middleware.RequirePage

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)
	e.GET("/auth/session", authHandler.Session, auth)

	v1 := e.Group("/v1", auth)
	v1.GET("/navigation", handler.Navigation)

	v1.GET("/dashboard", reportHandler.Dashboard, page(domain.PageDashboard))

	v1.GET("/appointments", appointmentHandler.List, page(domain.PageAppointments))
	v1.GET("/appointments/:id", appointmentHandler.Get, page(domain.PageAppointments))
	v1.PUT("/appointments/:id", appointmentHandler.Update, page(domain.PageAppointments))

	v1.POST("/appointments", appointmentHandler.Create, page(domain.PageNewAppointment))
	v1.POST("/extractions", extractionHandler.Extract, page(domain.PageNewAppointment))

	v1.GET("/reports", reportHandler.Filter, page(domain.PageReports))
	v1.GET("/reports/export", reportHandler.Export, page(domain.PageReports))

	v1.GET("/users", userHandler.List, page(domain.PageUsers))
	v1.POST("/users", userHandler.Create, page(domain.PageUsers))
	v1.PUT("/users/:id", userHandler.Update, page(domain.PageUsers))
	v1.DELETE("/users/:id", userHandler.Delete, page(domain.PageUsers))

	v1.GET("/settings", settingsHandler.Get, page(domain.PageSettings))

	return e
}

// requestLogger writes one access log entry per request. Query strings are
// left out since they may carry applicant names or CPFs.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
