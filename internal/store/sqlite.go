package store

import (
	"database/sql"
	"encoding/json"

	"worklog/internal/errors"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteStore implements Store on top of a single-file SQLite database with
// one key-value table. Each collection is stored as a whole JSON document,
// written back in full on every mutation.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (and if necessary creates) the store at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open store", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageError("initialise store schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get reads the JSON document under key into out.
func (s *SQLiteStore) Get(key string, out interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.NewStorageError("read key "+key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, errors.NewStorageError("decode key "+key, err)
	}
	return true, nil
}

// Set writes value as the JSON document under key, replacing any previous value.
func (s *SQLiteStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError("encode key "+key, err)
	}

	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.Exec(query, key, string(raw)); err != nil {
		return errors.NewStorageError("write key "+key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting a missing key is not an error.
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.NewStorageError("delete key "+key, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
