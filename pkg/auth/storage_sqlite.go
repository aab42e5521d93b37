package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS oauth_token (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	payload    TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStorage persists the token in a SQLite database. Useful when the
// token should live alongside other application state in one database file
// instead of a standalone JSON file. The same load semantics as FileStorage
// apply: absent or unparsable rows yield (nil, nil).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the database at path and ensures the
// token table exists. The caller owns the store and must Close it.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open token database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

// Store upserts the single token row.
func (s *SQLiteStorage) Store(token *TokenInfo) error {
	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO oauth_token (id, payload, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Load returns the stored token, or (nil, nil) when the row is absent or its
// payload no longer parses.
func (s *SQLiteStorage) Load() (*TokenInfo, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM oauth_token WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	var token TokenInfo
	if err := json.Unmarshal([]byte(payload), &token); err != nil {
		return nil, nil
	}
	if token.AccessToken == "" {
		return nil, nil
	}
	return &token, nil
}

// Clear deletes the token row; clearing an empty store is not an error.
func (s *SQLiteStorage) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM oauth_token WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
