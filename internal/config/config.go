// Package config loads process configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Sanji-devv/Mineria-dc-bot/internal/errors"
)

// Config holds the process configuration, populated from MINERIA_*
// environment variables.
type Config struct {
	// RedisAddr is the host:port of the Redis backing store
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`

	// DataDir holds the race and class catalog JSON files
	DataDir string `envconfig:"DATA_DIR" default:"data"`

	// SessionTTL bounds how long an untouched creation session lives
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"1h"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mineria", &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to load configuration")
	}
	return &cfg, nil
}
