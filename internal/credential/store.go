// ABOUTME: Device-local persistence for the bearer token.
// ABOUTME: Wraps a Badger database holding a single named string entry.
package credential

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
)

// tokenKey is the fixed name of the one credential entry.
const tokenKey = "auth:token"

// Store persists the bearer token in a local key-value database.
// An absent entry means unauthenticated.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the credential database under dir.
func Open(dir string) (*Store, error) {
	path := filepath.Join(dir, "credentials")
	if err := os.MkdirAll(path, 0700); err != nil {
		return nil, fmt.Errorf("create credential dir: %w", err)
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open credential store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Token returns the stored token, or "" when none is stored.
func (s *Store) Token() (string, error) {
	var tok string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tokenKey))
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		tok = string(val)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return tok, nil
}

// SetToken stores tok, replacing any previous value.
func (s *Store) SetToken(tok string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tokenKey), []byte(tok))
	})
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// ClearToken removes the stored token. Clearing an absent token is a no-op.
func (s *Store) ClearToken() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(tokenKey))
	})
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
