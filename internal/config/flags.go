package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-env runtime mode (production, development, test)
//	-version application version
//	-log-level log level
//	-host interface to bind
//	-p default listening port
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout drain timeout (e.g., "10s")
//	-db-driver database driver (pgx, sqlite3)
//	-d database DSN
//	-c/-config json file path with configs
//
// Flag defaults are zero values so that unset flags never override values
// coming from the environment.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-bootstrap", flag.ContinueOnError)

	var (
		mode            string
		version         string
		logLevel        string
		host            string
		port            int
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
		dbDriver        string
		databaseDSN     string
		jsonConfigPath  string
	)

	fs.StringVar(&mode, "env", "", "Runtime mode (production, development, test)")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&host, "host", "", "Interface to bind")
	fs.IntVar(&port, "p", 0, "Default listening port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Drain timeout (e.g., 10s)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:      mode,
			Version:  version,
			LogLevel: logLevel,
		},
		Server: Server{
			Host:            host,
			Port:            port,
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
