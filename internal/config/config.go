// Package config manages environment variables.
//
// It reads variables from the `.env` file,
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults so the tool runs against the local `chinook` database
//     without any configuration at all.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/deppfellow/chinook/internal/validation"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix CHINOOK_.

	Keys are normalized (prefix removed, lowercased) and the first "_" is
	turned into the "." nesting delimiter, so:

	  CHINOOK_DATABASE_URL                 -> database.url
	  CHINOOK_LOGGING_SLOW_QUERY_THRESHOLD -> logging.slow_query_threshold
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "CHINOOK_"

// DefaultDatabaseURL is the fixed connection string of the chinook database.
// It resolves through the local socket / PG* environment like `psql chinook`.
const DefaultDatabaseURL = "postgres:///chinook"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator
// through package validation.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	// Env is a free label; "local" additionally enables SQL trace logging.
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig describes the single database the tool talks to.
type DatabaseConfig struct {
	URL            string        `koanf:"url" validate:"required"`
	ConnectTimeout time.Duration `koanf:"connect_timeout" validate:"min=1s"`
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Database: DatabaseConfig{
			URL:            DefaultDatabaseURL,
			ConnectTimeout: 10 * time.Second,
		},
		Logging: DefaultLoggingConfig(),
	}
}

// IsLocal reports whether the tool runs in the "local" environment.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}

// Validate checks the struct tags, then the rules tags cannot express.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// envKey maps a raw env var name into a koanf key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Load reads the environment on top of Default, unmarshals it into a Config
// and validates the result.
//
// Unlike a server, a CLI should report bad configuration as an error to the
// command instead of exiting from deep inside the loader.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites the keys that are present, so defaults survive.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validation.Check(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
