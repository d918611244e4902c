// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/overlaphq/overlap-server/cliparse"
	"github.com/overlaphq/overlap-server/db"
	"github.com/overlaphq/overlap-server/slug"
)

// SetupTestDB opens an in-memory SQLite database with the full schema.
// The pool is pinned to one connection so the :memory: database is not
// silently duplicated per connection.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4170,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		SlugSalt:     "test-slug-salt",
	}
}

// CreateTestMoim creates a moim and returns its ID and share slug
func CreateTestMoim(t *testing.T, conn *sql.DB, cfg cliparse.Config, name string) (moimID, shareSlug string) {
	t.Helper()

	moimID = uuid.NewString()
	shareSlug = slug.ShareSlug(moimID, cfg.SlugSalt)

	_, err := conn.Exec(`
		INSERT INTO moim (id, name, share_slug, created_at)
		VALUES ($1, $2, $3, $4)
	`, moimID, name, shareSlug, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test moim: %v", err)
	}

	return moimID, shareSlug
}

// AddTestBuddy adds a buddy to a moim and returns the buddy ID
func AddTestBuddy(t *testing.T, conn *sql.DB, moimID, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO buddy (moim_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, moimID, name, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test buddy: %v", err)
	}

	return id
}

// AddTestSlot inserts an availability slot directly. pick is 1 or -1.
func AddTestSlot(t *testing.T, conn *sql.DB, moimID string, buddyID int64, date string, pick int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO slot (moim_id, buddy_id, date, pick, fix, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, moimID, buddyID, date, pick, false, time.Now().UTC()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test slot: %v", err)
	}

	return id
}

// FixTestDate marks every slot on a date as finalized
func FixTestDate(t *testing.T, conn *sql.DB, moimID, date string) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE slot SET fix = $1 WHERE moim_id = $2 AND date = $3
	`, true, moimID, date)
	if err != nil {
		t.Fatalf("Failed to fix test date: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
