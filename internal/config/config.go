// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/homestash/homestash/internal/wfh"
)

// Config holds all runtime configuration for the API server.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"APP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Server struct {
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
		IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	} `envPrefix:"SERVER_"`

	Telemetry struct {
		Enabled        bool          `env:"ENABLED" envDefault:"false"`
		OTLPEndpoint   string        `env:"EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
		SampleRatio    float64       `env:"TRACES_SAMPLER_RATIO" envDefault:"1"`
		ExportInterval time.Duration `env:"METRIC_EXPORT_INTERVAL" envDefault:"15s"`
	} `envPrefix:"OTEL_"`

	RequireTLS bool `env:"REQUIRE_TLS" envDefault:"false"`

	CORS struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
		MaxAge         int      `env:"MAX_AGE" envDefault:"300"`
	} `envPrefix:"CORS_"`

	RateLimit struct {
		Requests int           `env:"REQUESTS" envDefault:"30"`
		Window   time.Duration `env:"WINDOW" envDefault:"1m"`
	} `envPrefix:"RATE_LIMIT_"`

	WFH struct {
		DayStart wfh.Clock `env:"DAY_START" envDefault:"08:00"`
		DayEnd   wfh.Clock `env:"DAY_END" envDefault:"20:00"`
	} `envPrefix:"WFH_"`
}

// Load reads the given dotenv files (".env" when none are given), then parses
// the environment. Missing dotenv files are ignored and never override
// variables that are already set.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// the first error is the most useful one in logs
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	if err := c.DayBounds().Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("invalid OTEL_TRACES_SAMPLER_RATIO %v: must be between 0 and 1", c.Telemetry.SampleRatio)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit requests and window must be positive")
	}
	if c.IsProduction() && slices.Contains(c.CORS.AllowedOrigins, "*") {
		return errors.New("CORS_ALLOWED_ORIGINS must list explicit origins in production")
	}
	return nil
}

// DayBounds returns the configured WFH day bounds.
func (c *Config) DayBounds() wfh.DayBounds {
	return wfh.DayBounds{Start: c.WFH.DayStart, End: c.WFH.DayEnd}
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
