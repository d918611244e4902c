// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/overlaphq/overlap-server/models"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	// ErrNotFound indicates a referenced moim, buddy, or slot does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a duplicate buddy name within a moim.
	ErrConflict = errors.New("conflict")
)

// GroupStore is the persistence boundary for moims, buddies, and slots.
// Handlers receive an explicit store handle; there are no package-level
// singletons. The aggregation engine never touches the store — it operates
// on the record lists these methods return.
type GroupStore interface {
	// CreateMoim persists a fully-populated moim (ID, slug, and
	// timestamp are set by the caller).
	CreateMoim(ctx context.Context, m *models.Moim) error

	// GetMoim returns a moim with its buddies and slots loaded.
	// Returns ErrNotFound if the moim does not exist.
	GetMoim(ctx context.Context, id string) (*models.Moim, error)

	// SearchMoims returns moims whose name starts with the given prefix,
	// newest first, capped at 20. Buddies and slots are not loaded.
	SearchMoims(ctx context.Context, namePrefix string) ([]models.Moim, error)

	// AddBuddy creates a participant. Returns ErrNotFound if the moim
	// does not exist and ErrConflict if the name is already taken
	// within the moim.
	AddBuddy(ctx context.Context, moimID, name string) (*models.Buddy, error)

	// ToggleSlot applies click semantics for one (buddy, date) pair:
	// no record -> insert; same pick -> delete (returns deleted=true);
	// different pick -> update in place. Returns ErrNotFound if the
	// buddy does not belong to the moim.
	ToggleSlot(ctx context.Context, moimID string, buddyID int64, date string, pick int, begin, end *string) (slot *models.Slot, deleted bool, err error)

	// DeleteSlot removes the vote record for (moim, buddy, date).
	// Returns ErrNotFound if no such record exists.
	DeleteSlot(ctx context.Context, moimID string, buddyID int64, date string) error

	// IsDateFixed reports whether any slot for (moim, date) carries the
	// fix flag. Returns ErrNotFound if the moim does not exist.
	IsDateFixed(ctx context.Context, moimID, date string) (bool, error)

	// SetFix writes the fix flag on every slot for (moim, date). When
	// fixing a date that has no slots, a marker slot (pick 0) owned by
	// buddyID is created; buddyID <= 0 in that case yields ErrNotFound.
	SetFix(ctx context.Context, moimID, date string, fix bool, buddyID int64) error

	// Close releases any resources held by the store.
	Close() error
}
