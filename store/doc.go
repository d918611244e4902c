// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists moims, buddies, and slots.

# GroupStore

GroupStore is the single persistence boundary. Handlers receive a store
handle explicitly; nothing in this module keeps ambient database state:

	st := store.New(dbConn)
	moimHandler := handlers.NewMoimHandler(st, cfg)

The SQL implementation works against both SQLite (modernc.org/sqlite)
and PostgreSQL (lib/pq) using $N placeholders.

# Mutation Semantics

ToggleSlot implements the click behavior the calendar UI relies on:

	no record       -> insert (pick defaults to available)
	same pick again -> delete the row (unmark, not a soft delete)
	opposite pick   -> update in place

SetFix writes the per-date fix flag across every slot of the date, and
creates a pick-0 marker slot when a date with no votes is fixed.

# Errors

ErrNotFound and ErrConflict are sentinel errors; callers match them with
errors.Is and map them to 404 and 409. Everything else is a storage
failure and surfaces as a 500.
*/
package store
