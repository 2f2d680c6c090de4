// Package config loads server configuration from the environment, with a
// local .env file honored in development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full server configuration.
type Config struct {
	// HTTPAddr is the listen address of the API server
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// ShutdownTimeout bounds graceful drain on SIGTERM
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// AllowedOrigins lists the browser origins permitted by CORS. Empty
	// means the local dev frontend.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`

	// RedisAddr is the shared state store
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// LogLevel is the zap level: debug, info, warn, error
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Debug switches gin into debug mode
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error; deployed environments configure through real env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return &cfg, nil
}
