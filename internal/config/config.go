// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSQLitePath is the journal file used when DATABASE_URL is unset.
const DefaultSQLitePath = "travel_journal.db"

// Config holds all configuration values for the journal CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Driver selects the storage engine: "sqlite" (default) or "postgres".
	Driver string

	// DatabaseURL is the SQLite file path or the Postgres connection string.
	// Defaults to DefaultSQLitePath for sqlite; required for postgres.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming every variable that is missing or invalid.
func Load() (Config, error) {
	cfg := Config{
		Driver:   strings.ToLower(getEnv("JOURNAL_DB_DRIVER", DriverSQLite)),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var problems []string

	switch cfg.Driver {
	case DriverSQLite:
		cfg.DatabaseURL = getEnv("DATABASE_URL", DefaultSQLitePath)
	case DriverPostgres:
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			problems = append(problems, "DATABASE_URL is required when JOURNAL_DB_DRIVER=postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("JOURNAL_DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.Driver))
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
