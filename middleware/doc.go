// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: request/response logging via slog plus Prometheus
    request counters and latency observations
  - CORS: permissive cross-origin headers and preflight handling

# Helpers

  - JSONResponse: write any value as a JSON response
  - ErrorResponse: write a models.ErrorResponse with status text
  - ParseJSONBody: decode a request body into a struct

Handlers never write raw bytes; everything goes through JSONResponse so
error shapes stay uniform.
*/
package middleware
