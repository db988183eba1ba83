// Package config loads the function app configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains the settings shared by both function apps.
type Config struct {
	// Port is assigned by the function host to its custom handler process.
	Port        string `env:"FUNCTIONS_CUSTOMHANDLER_PORT" envDefault:"8080"`
	FunctionKey string `env:"FUNCTION_KEY"`

	NagerBaseURL string        `env:"NAGER_BASE_URL" envDefault:"https://date.nager.at/api/v3"`
	NagerTimeout time.Duration `env:"NAGER_TIMEOUT" envDefault:"5s"`

	RatePLNToEUR float64 `env:"RATE_PLN_TO_EUR" envDefault:"0.23"`
	RateEURToPLN float64 `env:"RATE_EUR_TO_PLN" envDefault:"4.35"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port is empty"))
	}
	if c.NagerBaseURL == "" {
		errs = append(errs, errors.New("nager base url is empty"))
	}
	if c.NagerTimeout <= 0 {
		errs = append(errs, fmt.Errorf("nager timeout must be positive, got %s", c.NagerTimeout))
	}
	if c.RatePLNToEUR <= 0 || c.RateEURToPLN <= 0 {
		errs = append(errs, errors.New("exchange rates must be positive"))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}
