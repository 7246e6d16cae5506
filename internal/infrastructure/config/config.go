package config

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL of zero issues tokens without expiry.
	TokenTTL       time.Duration `env:"TOKEN_TTL,       default=0s"`
	ReportTimezone string        `env:"REPORT_TIMEZONE, default=America/Sao_Paulo"`

	Store    StoreConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Gemini   GeminiConfig
}

type StoreConfig struct {
	// Backend is one of sqlite, redis, mongo, postgres, memory.
	Backend    string `env:"STORE_BACKEND, default=sqlite"`
	SQLitePath string `env:"SQLITE_PATH,   default=var/cras.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=cras"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=cras:"`
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL"`
}

type GeminiConfig struct {
	// APIKey left empty disables document extraction.
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-2.5-flash"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through l and checks the values go-envconfig
// cannot check on its own.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}

	switch cfg.Store.Backend {
	case "sqlite", "redis", "mongo", "postgres", "memory":
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == "postgres" && cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}
	if _, err := time.LoadLocation(cfg.ReportTimezone); err != nil {
		return nil, fmt.Errorf("REPORT_TIMEZONE: %w", err)
	}
	return &cfg, nil
}

// Location returns the report time zone. LoadFrom has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
