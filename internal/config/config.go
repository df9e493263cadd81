// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Runtime modes recognised in App.Env. Anything other than ModeProduction
// enables diagnostic detail (stack traces) in error responses.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeTest        = "test"
)

// Database drivers accepted in DB.Driver. The values are the names the
// drivers register with database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// go-bootstrap server. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds process-wide settings: runtime mode, version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the listening socket and timeout settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the database used by the seed job and the items store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Env is the runtime mode ("production", "development", "test").
	// Env: APP_ENV
	Env string `env:"ENV" envDefault:"development"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"N/A"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// IsProduction reports whether the runtime mode is production.
func (a App) IsProduction() bool {
	return a.Env == ModeProduction
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the default TCP port used when the caller of Start does not
	// request one explicitly.
	// Env: SERVER_PORT
	Port int `env:"PORT" envDefault:"3000"`

	// RequestTimeout bounds a single inbound request (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds how long draining may take before in-flight
	// connections are cut.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is either "pgx" (PostgreSQL) or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" envDefault:"pgx"`

	// DSN is the data source name. When empty items are kept in memory and
	// there is nothing to migrate.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
