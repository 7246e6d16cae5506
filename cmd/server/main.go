// Command server runs the CRAS agenda HTTP API.
//
//	@title			CRAS Agenda API
//	@version		1.0
//	@BasePath		/
//	@securityDefinitions.apikey	BearerAuth
//	@in			header
//	@name			Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/api"
	"github.com/cras-office/agenda/internal/api/handler"
	"github.com/cras-office/agenda/internal/core/ports"
	"github.com/cras-office/agenda/internal/core/service"
	"github.com/cras-office/agenda/internal/infrastructure/config"
	"github.com/cras-office/agenda/internal/infrastructure/gemini"
	httpops "github.com/cras-office/agenda/internal/infrastructure/http"
	"github.com/cras-office/agenda/internal/infrastructure/store"
	"github.com/cras-office/agenda/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "cras-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	opened, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := opened.Close(); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()

	records := service.NewRecords(opened.Store)
	if err := service.NewSeeder(records, log).Initialize(ctx); err != nil {
		return err
	}

	extraction := service.NewExtractionService(newExtractor(ctx, cfg, log), log)

	e := api.NewRouter(api.Services{
		Auth:         service.NewAuthService(records, cfg.JWTSecret, cfg.TokenTTL, log),
		Users:        service.NewUserService(records, log),
		Appointments: service.NewAppointmentService(records, log),
		Reports:      service.NewReportService(records, cfg.Location()),
		Extraction:   extraction,
	}, api.Options{
		JWTSecret: cfg.JWTSecret,
		Log:       log,
		Settings: handler.Settings{
			StoreBackend:      cfg.Store.Backend,
			ExtractionEnabled: extraction.Enabled(),
			TokenTTL:          cfg.TokenTTL,
			ReportTimezone:    cfg.ReportTimezone,
		},
	})
	httpops.RegisterOps(e, opened.Checks)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newExtractor returns nil when no API key is configured, which leaves
// extraction disabled.
func newExtractor(ctx context.Context, cfg *config.Config, log zerolog.Logger) ports.DocumentExtractor {
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, document extraction disabled")
		return nil
	}
	x, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	if err != nil {
		log.Error().Err(err).Msg("gemini unavailable, document extraction disabled")
		return nil
	}
	return x
}
