// Package localstore is the client's durable local storage: a small
// key/value table in an embedded SQLite database, standing in for the
// browser localStorage the storefront relies on. The process is the only
// writer; SQLite just gives us atomic writes that survive an immediate exit.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/boardsandcats/storefront/internal/domain/cart"
	"github.com/boardsandcats/storefront/internal/domain/identity"
)

// Storage keys. cartKey matches the key the web client used, so the contract
// (JSON array of {product, quantity}) is shared.
const (
	cartKey  = "boardsandcats_cart"
	tokenKey = "token"
	userKey  = "user"
)

// Store is a file-backed key/value store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	db.Exec("PRAGMA busy_timeout=5000")

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value for key, or nil when absent.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// LoadCart implements cart.Storage. Malformed stored content is discarded
// and reported as an empty cart, never as an error.
func (s *Store) LoadCart() ([]cart.Line, error) {
	raw, err := s.Get(cartKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		// corrupted entry: drop it and start empty
		_ = s.Delete(cartKey)
		return nil, nil
	}
	return lines, nil
}

// SaveCart implements cart.Storage.
func (s *Store) SaveCart(lines []cart.Line) error {
	if lines == nil {
		lines = []cart.Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.Put(cartKey, raw)
}

// SaveSession implements identity.SessionStore.
func (s *Store) SaveSession(sess identity.Session) error {
	user, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.Put(tokenKey, []byte(sess.Token)); err != nil {
		return err
	}
	return s.Put(userKey, user)
}

// LoadSession implements identity.SessionStore. A missing or unreadable
// session yields nil, matching the "start signed out" behavior.
func (s *Store) LoadSession() (*identity.Session, error) {
	token, err := s.Get(tokenKey)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.Get(userKey)
	if err != nil {
		return nil, err
	}
	if token == nil || rawUser == nil {
		return nil, nil
	}

	var user identity.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		_ = s.ClearSession()
		return nil, nil
	}
	return &identity.Session{Token: string(token), User: user}, nil
}

// ClearSession implements identity.SessionStore.
func (s *Store) ClearSession() error {
	if err := s.Delete(tokenKey); err != nil {
		return err
	}
	return s.Delete(userKey)
}
