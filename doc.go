// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Overlap API server.

Overlap is a group scheduling service: a moim (gathering) collects
per-buddy availability votes over calendar dates, renders them as a
monthly heatmap, ranks candidate dates, and lets the group finalize a
date. A websocket channel carries a collaborative grid and finalize
notifications.

# Starting the Server

The server runs on SQLite out of the box:

	SLUG_SALT=dev-salt go run main.go

Or against PostgreSQL:

	go run main.go -t postgres -d "postgres://..." --slug-salt dev-salt

# Configuration

Required settings:

  - SLUG_SALT (--slug-salt): Secret for share slug HMAC
  - DATABASE_URL (-d): PostgreSQL connection string (postgres only)

Optional settings:

  - PORT (-p): Server port (default: 4170)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

A .env file in the working directory is loaded on startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (moims, buddies, slots, availability)
  - schedule: heatmap aggregation and date ranking
  - store: GroupStore interface and its database/sql implementation
  - realtime: websocket hub for grid sessions and finalize events
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - slug: share slug generation
  - db: Schema creation (SQLite and PostgreSQL dialects)
  - cliparse: Configuration parsing
  - metrics: Prometheus request instrumentation
  - logging: slog setup

See package documentation for each component.
*/
package main
