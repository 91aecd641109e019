// ABOUTME: Plain Badger backend for local-only storage without cloud sync.
// ABOUTME: Same layout as the Charm backend, minus the network.
package store

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerStore is a local Badger database with no sync.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates a Badger database at the given directory.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the value for key, or (nil, nil) when absent.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set overwrites the value for key.
func (s *BadgerStore) Set(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
