// Copyright 2025 Irohad Authors
//
// KVAdapter wraps a cometbft-db handle behind a minimal key-value
// interface. Kura uses one as an auxiliary height-to-hash index: a
// cache that speeds up hash lookups without ever being the source of
// truth for block contents — that remains the flat-file block store.

package kvdb

import (
	dbm "github.com/cometbft/cometbft-db"
)

// KV is the minimal persistent key-value contract consumed by the rest
// of this module.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Has(key []byte) (bool, error)
	Delete(key []byte) error
	Close() error
}

// KVAdapter adapts a cometbft-db dbm.DB to KV.
type KVAdapter struct {
	db dbm.DB
}

// NewKVAdapter wraps db.
func NewKVAdapter(db dbm.DB) *KVAdapter {
	return &KVAdapter{db: db}
}

// Open constructs a cometbft-db-backed KVAdapter at path using backend,
// creating the directory layout cometbft-db expects.
func Open(name, dir string, backend dbm.BackendType) (*KVAdapter, error) {
	db, err := dbm.NewDB(name, backend, dir)
	if err != nil {
		return nil, err
	}
	return NewKVAdapter(db), nil
}

// Get returns the value for key, or nil if absent.
func (a *KVAdapter) Get(key []byte) ([]byte, error) {
	if a.db == nil {
		return nil, nil
	}
	return a.db.Get(key)
}

// Set durably writes key to value.
func (a *KVAdapter) Set(key, value []byte) error {
	if a.db == nil {
		return nil
	}
	return a.db.SetSync(key, value)
}

// Has reports whether key is present.
func (a *KVAdapter) Has(key []byte) (bool, error) {
	if a.db == nil {
		return false, nil
	}
	return a.db.Has(key)
}

// Delete removes key.
func (a *KVAdapter) Delete(key []byte) error {
	if a.db == nil {
		return nil
	}
	return a.db.DeleteSync(key)
}

// Close releases the underlying database handle.
func (a *KVAdapter) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
