// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

Routes use Go 1.22+ method-and-pattern syntax on the standard ServeMux.
API handlers are wrapped with middleware.WithLogging, which also feeds
the Prometheus request metrics; /health, /metrics and the websocket
endpoint are left unwrapped.
*/
package router
