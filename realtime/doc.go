// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime is the collaborative grid-painting channel.

Clients connect to GET /ws/{session} and exchange full-grid snapshots:
whenever one client paints, it sends its entire grid state, and the hub
relays it to every peer in the same session, which replaces its local
state wholesale. Last writer wins; the feature is low-stakes enough
that no operational-transform merging is warranted.

The hub is also the delivery path for server-originated notifications:
the finalize toggle publishes confirmed/canceled events to the moim's
session so connected clients can react immediately.

Usage:

	hub := realtime.NewHub()
	go hub.Run()
	mux.HandleFunc("GET /ws/{session}", hub.ServeWS)
*/
package realtime
