// Package config reads the server and CLI settings from INVOICEPDF_
// environment variables and optional .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. INVOICEPDF_PORT
const Prefix = "INVOICEPDF"

type Config struct {
	Port         int           `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	// MaxBodyBytes caps request bodies; logos arrive inline as data URLs
	MaxBodyBytes int64    `envconfig:"MAX_BODY_BYTES" default:"10485760"`
	CORSOrigins  []string `envconfig:"CORS_ORIGINS" default:"*"`

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`

	FontDir        string  `envconfig:"FONT_DIR"`
	FontFamily     string  `envconfig:"FONT_FAMILY"`
	PageSize       string  `envconfig:"PAGE_SIZE" default:"A4"`
	Landscape      bool    `envconfig:"LANDSCAPE" default:"false"`
	MarginTop      float64 `envconfig:"MARGIN_TOP" default:"40"`
	MarginRight    float64 `envconfig:"MARGIN_RIGHT" default:"40"`
	MarginBottom   float64 `envconfig:"MARGIN_BOTTOM" default:"30"`
	MarginLeft     float64 `envconfig:"MARGIN_LEFT" default:"40"`
	AttributionURL string  `envconfig:"ATTRIBUTION_URL" default:"https://github.com/gompdf/invoicepdf"`

	SentryDSN         string `envconfig:"SENTRY_DSN"`
	SentryEnvironment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the configuration from INVOICEPDF_ variables. Files named in
// envFiles are loaded first when present; they never override variables
// already set in the environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
