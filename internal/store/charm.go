// ABOUTME: Charm KV backend with automatic best-effort cloud sync.
// ABOUTME: Local Badger store under the hood; Sync pushes to Charm Cloud after writes.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/charmbracelet/charm/kv"
)

const charmHost = "charm.2389.dev"

// CharmStore wraps Charm KV. Writes sync to Charm Cloud on a best-effort
// basis; a failed sync never fails the write. When another process holds
// the database lock the store opens read-only and writes are rejected.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// OpenCharm opens the named Charm KV database and pulls remote state.
func OpenCharm(name string) (*CharmStore, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &CharmStore{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode).
	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return s, nil
}

// Get returns the value for key, or (nil, nil) when absent.
func (s *CharmStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, err := s.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores the value and syncs to Charm Cloud if enabled.
func (s *CharmStore) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	if err := s.kv.Set([]byte(key), data); err != nil {
		return err
	}
	if s.autoSync {
		_ = s.kv.Sync()
	}
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode.
func (s *CharmStore) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *CharmStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}
