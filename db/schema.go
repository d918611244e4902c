// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// databaseType selects the dialect: "sqlite" or "postgres".
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case "sqlite":
		schema = schemaSQLite
	case "postgres":
		schema = schemaPostgres
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// created_at columns have no database-side default; the store writes
// timestamps itself so both dialects behave identically.

const schemaSQLite = `
-- Moims (scheduling events)
CREATE TABLE IF NOT EXISTS moim (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    share_slug TEXT UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_moim_share_slug ON moim(share_slug);
CREATE INDEX IF NOT EXISTS idx_moim_name ON moim(name);

-- Buddies (participants)
CREATE TABLE IF NOT EXISTS buddy (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    moim_id TEXT NOT NULL REFERENCES moim(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (moim_id, name)
);

CREATE INDEX IF NOT EXISTS idx_buddy_moim_id ON buddy(moim_id);

-- Slots (one vote per buddy per date)
CREATE TABLE IF NOT EXISTS slot (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    moim_id TEXT NOT NULL REFERENCES moim(id) ON DELETE CASCADE,
    buddy_id INTEGER NOT NULL REFERENCES buddy(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    "begin" TEXT,
    "end" TEXT,
    pick INTEGER NOT NULL DEFAULT 1,
    fix INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (moim_id, buddy_id, date)
);

CREATE INDEX IF NOT EXISTS idx_slot_moim_id ON slot(moim_id);
CREATE INDEX IF NOT EXISTS idx_slot_moim_date ON slot(moim_id, date);
`

const schemaPostgres = `
-- Moims (scheduling events)
CREATE TABLE IF NOT EXISTS moim (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    share_slug TEXT UNIQUE,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_moim_share_slug ON moim(share_slug);
CREATE INDEX IF NOT EXISTS idx_moim_name ON moim(name);

-- Buddies (participants)
CREATE TABLE IF NOT EXISTS buddy (
    id BIGSERIAL PRIMARY KEY,
    moim_id TEXT NOT NULL REFERENCES moim(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (moim_id, name)
);

CREATE INDEX IF NOT EXISTS idx_buddy_moim_id ON buddy(moim_id);

-- Slots (one vote per buddy per date)
CREATE TABLE IF NOT EXISTS slot (
    id BIGSERIAL PRIMARY KEY,
    moim_id TEXT NOT NULL REFERENCES moim(id) ON DELETE CASCADE,
    buddy_id BIGINT NOT NULL REFERENCES buddy(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    "begin" TEXT,
    "end" TEXT,
    pick INTEGER NOT NULL DEFAULT 1,
    fix BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (moim_id, buddy_id, date)
);

CREATE INDEX IF NOT EXISTS idx_slot_moim_id ON slot(moim_id);
CREATE INDEX IF NOT EXISTS idx_slot_moim_date ON slot(moim_id, date);
`
