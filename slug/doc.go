// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slug generates share slugs and random identifiers.

ShareSlug derives a short base62 slug from a moim ID via HMAC-SHA256,
so share links are stable across restarts without storing extra state:

	s := slug.ShareSlug(moimID, cfg.SlugSalt)

GenerateID produces random hex identifiers for anything that is not a
moim (moims themselves use UUIDs, matching the original schema).
*/
package slug
