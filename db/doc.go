// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - moim: Scheduling events (uuid id, name, share slug)
  - buddy: Participants, unique by name within a moim
  - slot: One vote per (moim, buddy, date) with pick value and fix flag

# Relationships

	moim 1──* buddy
	moim 1──* slot
	buddy 1──* slot

All foreign keys use ON DELETE CASCADE.

# Constraints

  - buddy (moim_id, name) UNIQUE backs the duplicate-name conflict check
  - slot (moim_id, buddy_id, date) UNIQUE enforces at most one active
    vote record per participant per day

# Indexes

Performance indexes on:

  - moim.share_slug (unique), moim.name
  - buddy.moim_id
  - slot.moim_id and slot.(moim_id, date)
*/
package db
