package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide immutable configuration, built once at startup.
type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL, default=postgres://localhost:5432/catalog?sslmode=disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
