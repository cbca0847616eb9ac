// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the poll API server.

The server exposes a fixed, read-only list of polls as JSON:

	GET /polls

# Starting the Server

No configuration is required:

	go run .

	Server is running on http://127.0.0.1:8000

Or with flags:

	go run . -p 3318 --host 127.0.0.1 -f polls.yaml

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 8000)
  - HOST (--host): Bind address (default: all interfaces)
  - POLLS_FILE (-f): YAML or JSON file with the polls to serve
  - DATABASE_URL (-d): Database whose polls table is read once at startup
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - CORS_ORIGINS (--cors-origin): Frontend origins allowed to call the API
  - LOG_LEVEL (--log-level): debug, info, warn or error

A .env file in the working directory is loaded when present. Without a
polls file or database the built-in polls are served.

# Exit Codes

  - 0: shut down after SIGINT or SIGTERM
  - 1: bad configuration, invalid polls, or the address could not be bound

# Architecture

  - catalog: Builds the immutable poll collection
  - handlers: HTTP request handlers
  - router: Explicit (method, path) route table
  - middleware: Logging, CORS, JSON helpers
  - server: Bind, serve, graceful shutdown
  - models: Wire types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
