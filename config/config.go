// Package config provides configuration settings for the slug shortener service.
package config

import (
	"errors"
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration settings for the application.
// Only the listening port can be set from the environment.
type Config struct {
	ServerPort          int `env:"PORT"`
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
	SlugLength          int
	MaxSlugAttempts     int
	StrictURLValidation bool
	MetricsEnabled      bool
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() *Config {
	return &Config{
		ServerPort:          3000,
		RequestTimeout:      5 * time.Second,
		ShutdownTimeout:     10 * time.Second,
		SlugLength:          6,
		MaxSlugAttempts:     1000,
		StrictURLValidation: false,
		MetricsEnabled:      true,
	}
}

// Load builds a Config from the defaults, the given command line arguments
// and the environment, in that order of precedence (environment wins).
func Load(args []string) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.IntVar(&cfg.ServerPort, "port", cfg.ServerPort, "HTTP listening port")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Per-request timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.IntVar(&cfg.SlugLength, "slug-length", cfg.SlugLength, "Length of generated slugs")
	fs.IntVar(&cfg.MaxSlugAttempts, "max-slug-attempts", cfg.MaxSlugAttempts, "Collision retries before giving up (0 = unbounded)")
	fs.BoolVar(&cfg.StrictURLValidation, "strict-urls", cfg.StrictURLValidation, "Reject values that are not absolute URLs")
	fs.BoolVar(&cfg.MetricsEnabled, "metrics", cfg.MetricsEnabled, "Expose Prometheus metrics on /metrics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used to start the server.
func (c *Config) Validate() error {
	switch {
	case c.ServerPort <= 0 || c.ServerPort > 65535:
		return errors.New("server port must be between 1 and 65535")
	case c.RequestTimeout <= 0:
		return errors.New("request timeout must be positive")
	case c.ShutdownTimeout <= 0:
		return errors.New("shutdown timeout must be positive")
	case c.SlugLength <= 0:
		return errors.New("slug length must be positive")
	}
	return nil
}
