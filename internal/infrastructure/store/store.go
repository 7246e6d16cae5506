// Package store opens the record store selected by configuration.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/ports"
	"github.com/cras-office/agenda/internal/infrastructure/config"
	mongostore "github.com/cras-office/agenda/internal/infrastructure/db/mongo"
	"github.com/cras-office/agenda/internal/infrastructure/db/postgres"
	redisstore "github.com/cras-office/agenda/internal/infrastructure/db/redis"
	"github.com/cras-office/agenda/internal/infrastructure/db/sqlite"
	"github.com/cras-office/agenda/internal/infrastructure/store/memory"
)

// Opened is a ready store plus what the process needs around it.
type Opened struct {
	Store ports.Store
	// Checks are probed by the readiness endpoint, keyed by dependency name.
	Checks map[string]ports.Pinger
	// Close releases the connection or file handle.
	Close func() error
}

// Open connects to the backend named by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Opened, error) {
	backend := cfg.Store.Backend

	switch backend {
	case "sqlite":
		s, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info().Str("backend", backend).Str("path", cfg.Store.SQLitePath).Msg("store ready")
		return &Opened{Store: s, Checks: map[string]ports.Pinger{"sqlite": s}, Close: s.Close}, nil

	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		s := redisstore.NewStore(client, cfg.Redis.Prefix)
		log.Info().Str("backend", backend).Str("addr", cfg.Redis.Addr).Msg("store ready")
		return &Opened{Store: s, Checks: map[string]ports.Pinger{"redis": s}, Close: client.Close}, nil

	case "mongo":
		s, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		log.Info().Str("backend", backend).Str("database", cfg.Mongo.Database).Msg("store ready")
		return &Opened{Store: s, Checks: map[string]ports.Pinger{"mongodb": s}, Close: s.Close}, nil

	case "postgres":
		pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		s := postgres.NewStore(pool)
		log.Info().Str("backend", backend).Msg("store ready")
		return &Opened{
			Store:  s,
			Checks: map[string]ports.Pinger{"postgres": s},
			Close:  func() error { pool.Close(); return nil },
		}, nil

	case "memory":
		log.Warn().Str("backend", backend).Msg("records are kept in memory and lost on restart")
		s := memory.New()
		return &Opened{Store: s, Checks: map[string]ports.Pinger{}, Close: func() error { return nil }}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", backend)
}
