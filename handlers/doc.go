// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the coordination API.

Each handler group is a struct built over store.GroupStore, so tests can
run the full request path against an in-memory database. Handlers parse
and validate input, call the store (and the schedule package for the
read-side math), and map store errors onto status codes:

	store.ErrNotFound -> 404
	store.ErrConflict -> 409
	anything else     -> 500

The slot handler additionally holds the realtime hub so finalize
transitions can be pushed to connected clients.
*/
package handlers
