// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

Flags take precedence over environment variables:

	-p / PORT                  server port (default 4170)
	-d / DATABASE_URL          postgres URL or sqlite file path
	-t / DATABASE_TYPE         "sqlite" (default) or "postgres"
	--slug-salt / SLUG_SALT    secret for share slug HMAC (required)

SQLite needs no URL; the default path ./data/overlap.db is used and
parent directories are created on startup. A .env file, if present, is
loaded by main before parsing.
*/
package cliparse
