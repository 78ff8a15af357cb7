// Copyright 2025 Irohad Authors

package kura

import "errors"

var (
	// ErrGenesisNotChained is returned by Store when the tail is empty
	// and the incoming block was not chained at height 0 with a zero
	// previous hash. Kura only re-stamps height/previous_hash when the
	// tail is non-empty; genesis must arrive already chained.
	ErrGenesisNotChained = errors.New("kura: genesis block must be pre-chained at height 0 with a zero previous hash")

	// ErrCorrupt is wrapped around a block file that failed to decode.
	ErrCorrupt = errors.New("kura: block file is corrupt")

	// ErrNotReentrant is returned if Store is called while a previous
	// Store call on the same Kura has not yet returned.
	ErrNotReentrant = errors.New("kura: store is not reentrant")
)
