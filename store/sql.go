// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/overlaphq/overlap-server/models"
)

// Ensure SQL implements GroupStore
var _ GroupStore = (*SQL)(nil)

// SQL implements GroupStore on a database/sql handle. Placeholders use
// the $N form, which both lib/pq and modernc.org/sqlite accept as long
// as they appear in order.
type SQL struct {
	db *sql.DB
}

// New wraps an open database connection. Schema creation is the
// caller's responsibility (see the db package).
func New(db *sql.DB) *SQL {
	return &SQL{db: db}
}

// Close closes the underlying database connection.
func (s *SQL) Close() error {
	return s.db.Close()
}

func (s *SQL) CreateMoim(ctx context.Context, m *models.Moim) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO moim (id, name, share_slug, created_at)
		VALUES ($1, $2, $3, $4)
	`, m.ID, m.Name, m.ShareSlug, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert moim: %w", err)
	}
	return nil
}

func (s *SQL) GetMoim(ctx context.Context, id string) (*models.Moim, error) {
	var m models.Moim
	var slug sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, share_slug, created_at FROM moim WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &slug, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query moim: %w", err)
	}
	m.ShareSlug = slug.String

	buddies, err := s.listBuddies(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Buddies = buddies

	slots, err := s.listSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Slots = slots

	return &m, nil
}

func (s *SQL) SearchMoims(ctx context.Context, namePrefix string) ([]models.Moim, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, share_slug, created_at
		FROM moim
		WHERE name LIKE $1 || '%'
		ORDER BY created_at DESC
		LIMIT 20
	`, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to search moims: %w", err)
	}
	defer rows.Close()

	moims := []models.Moim{}
	for rows.Next() {
		var m models.Moim
		var slug sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &slug, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan moim: %w", err)
		}
		m.ShareSlug = slug.String
		moims = append(moims, m)
	}
	return moims, rows.Err()
}

func (s *SQL) AddBuddy(ctx context.Context, moimID, name string) (*models.Buddy, error) {
	if err := s.moimExists(ctx, moimID); err != nil {
		return nil, err
	}

	// Pre-insert existence check so duplicates surface as a distinct
	// conflict rather than a driver-specific constraint error.
	var taken bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM buddy WHERE moim_id = $1 AND name = $2)
	`, moimID, name).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("failed to check buddy name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("buddy %q already exists in moim: %w", name, ErrConflict)
	}

	b := models.Buddy{
		MoimID:    moimID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO buddy (moim_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, b.MoimID, b.Name, b.CreatedAt).Scan(&b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert buddy: %w", err)
	}
	return &b, nil
}

func (s *SQL) ToggleSlot(ctx context.Context, moimID string, buddyID int64, date string, pick int, begin, end *string) (*models.Slot, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The buddy check also proves the moim exists.
	var belongs bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM buddy WHERE id = $1 AND moim_id = $2)
	`, buddyID, moimID).Scan(&belongs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check buddy: %w", err)
	}
	if !belongs {
		return nil, false, fmt.Errorf("buddy %d not in moim %s: %w", buddyID, moimID, ErrNotFound)
	}

	existing := models.Slot{MoimID: moimID, BuddyID: buddyID, Date: date}
	err = tx.QueryRowContext(ctx, `
		SELECT id, "begin", "end", pick, fix, created_at
		FROM slot
		WHERE moim_id = $1 AND buddy_id = $2 AND date = $3
	`, moimID, buddyID, date).Scan(
		&existing.ID, &existing.Begin, &existing.End,
		&existing.Pick, &existing.Fix, &existing.CreatedAt,
	)

	switch {
	case err == sql.ErrNoRows:
		// First click on this day: create the record.
		slot := models.Slot{
			MoimID:    moimID,
			BuddyID:   buddyID,
			Date:      date,
			Begin:     begin,
			End:       end,
			Pick:      pick,
			CreatedAt: time.Now().UTC(),
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO slot (moim_id, buddy_id, date, "begin", "end", pick, fix, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, slot.MoimID, slot.BuddyID, slot.Date, slot.Begin, slot.End,
			slot.Pick, slot.Fix, slot.CreatedAt).Scan(&slot.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to insert slot: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit: %w", err)
		}
		return &slot, false, nil

	case err != nil:
		return nil, false, fmt.Errorf("failed to query slot: %w", err)

	case existing.Pick == pick:
		// Clicking the same state again unmarks the day entirely.
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM slot WHERE id = $1
		`, existing.ID); err != nil {
			return nil, false, fmt.Errorf("failed to delete slot: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit: %w", err)
		}
		return nil, true, nil

	default:
		// Switching between available and unavailable updates in place,
		// never duplicating the (moim, buddy, date) record.
		existing.Pick = pick
		existing.Begin = begin
		existing.End = end
		if _, err := tx.ExecContext(ctx, `
			UPDATE slot SET pick = $1, "begin" = $2, "end" = $3 WHERE id = $4
		`, existing.Pick, existing.Begin, existing.End, existing.ID); err != nil {
			return nil, false, fmt.Errorf("failed to update slot: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit: %w", err)
		}
		return &existing, false, nil
	}
}

func (s *SQL) DeleteSlot(ctx context.Context, moimID string, buddyID int64, date string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM slot WHERE moim_id = $1 AND buddy_id = $2 AND date = $3
	`, moimID, buddyID, date)
	if err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("slot (%s, %d, %s): %w", moimID, buddyID, date, ErrNotFound)
	}
	return nil
}

func (s *SQL) IsDateFixed(ctx context.Context, moimID, date string) (bool, error) {
	if err := s.moimExists(ctx, moimID); err != nil {
		return false, err
	}
	var fixed bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM slot WHERE moim_id = $1 AND date = $2 AND fix = $3)
	`, moimID, date, true).Scan(&fixed)
	if err != nil {
		return false, fmt.Errorf("failed to check fix state: %w", err)
	}
	return fixed, nil
}

func (s *SQL) SetFix(ctx context.Context, moimID, date string, fix bool, buddyID int64) error {
	if err := s.moimExists(ctx, moimID); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE slot SET fix = $1 WHERE moim_id = $2 AND date = $3
	`, fix, moimID, date)
	if err != nil {
		return fmt.Errorf("failed to update fix flag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n > 0 || !fix {
		return nil
	}

	// Fixing a date nobody voted for: the flag needs a row to live on.
	// The marker slot carries pick 0 so it never contributes to tallies.
	if buddyID <= 0 {
		return fmt.Errorf("no slot for date %s and no buddy to own a marker: %w", date, ErrNotFound)
	}
	var belongs bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM buddy WHERE id = $1 AND moim_id = $2)
	`, buddyID, moimID).Scan(&belongs)
	if err != nil {
		return fmt.Errorf("failed to check buddy: %w", err)
	}
	if !belongs {
		return fmt.Errorf("buddy %d not in moim %s: %w", buddyID, moimID, ErrNotFound)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slot (moim_id, buddy_id, date, pick, fix, created_at)
		VALUES ($1, $2, $3, 0, $4, $5)
	`, moimID, buddyID, date, fix, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert marker slot: %w", err)
	}
	return nil
}

func (s *SQL) moimExists(ctx context.Context, id string) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM moim WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check moim: %w", err)
	}
	if !exists {
		return fmt.Errorf("moim %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQL) listBuddies(ctx context.Context, moimID string) ([]models.Buddy, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, moim_id, name, created_at
		FROM buddy
		WHERE moim_id = $1
		ORDER BY id
	`, moimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query buddies: %w", err)
	}
	defer rows.Close()

	buddies := []models.Buddy{}
	for rows.Next() {
		var b models.Buddy
		if err := rows.Scan(&b.ID, &b.MoimID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan buddy: %w", err)
		}
		buddies = append(buddies, b)
	}
	return buddies, rows.Err()
}

func (s *SQL) listSlots(ctx context.Context, moimID string) ([]models.Slot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, moim_id, buddy_id, date, "begin", "end", pick, fix, created_at
		FROM slot
		WHERE moim_id = $1
		ORDER BY date, id
	`, moimID)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	slots := []models.Slot{}
	for rows.Next() {
		var sl models.Slot
		if err := rows.Scan(&sl.ID, &sl.MoimID, &sl.BuddyID, &sl.Date,
			&sl.Begin, &sl.End, &sl.Pick, &sl.Fix, &sl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, sl)
	}
	return slots, rows.Err()
}
