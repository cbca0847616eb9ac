// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Nothing is required; with no flags and no environment the server listens
on port 8000 on all interfaces and serves the built-in polls.

# Config Fields

  - Host: Bind address (default: all interfaces)
  - Port: Server listen port (default: 8000)
  - PollsFile: YAML or JSON polls file
  - DatabaseURL: Database to read the polls table from
  - DatabaseType: sqlite (default) or postgres
  - CORSOrigins: Origins allowed to call the API from a browser
  - LogLevel: slog level (default: info)

# CLI Flags

	-p, --port          Server port
	    --host          Bind address
	-f, --polls-file    Polls file
	-d, --database-url  Database URL
	-t, --database-type Database type
	    --cors-origin   Allowed origin (repeatable or comma separated)
	    --log-level     Log level
	    --env-file      .env file to load (default .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	HOST          → --host
	POLLS_FILE    → -f
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGINS  → --cors-origin (comma separated)
	LOG_LEVEL     → --log-level

CLI flags take precedence over environment variables. Variables from the
.env file never override variables already present in the environment.

# Validation

ParseFlags returns an error if:

  - the port is outside 0-65535 (ErrInvalidPort)
  - both a polls file and a database URL are set (ErrConflictingSources)
  - the database type is not sqlite or postgres (ErrUnknownDatabaseType)
  - the log level is unknown
  - an explicitly requested env file cannot be read
*/
package cliparse
