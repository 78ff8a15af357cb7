// Copyright 2025 Irohad Authors
//
// Kura is the block-persistence subsystem: an in-memory tail backed by
// BlockStore's flat-file log, with a height-to-hash index cached in an
// auxiliary key-value store. Its contract, per the original kura.rs:
//
//  1. On init, read every block from the store in ascending height
//     order, reconstruct the Merkle tree over their hashes, and
//     populate the in-memory tail.
//  2. On store(block), if the tail is non-empty, stamp
//     height = tail.last.height + 1 and previous_block_hash =
//     tail.last.hash(); genesis blocks arrive already chained.
//  3. Write the block to the store; on success emit a CommittedBlock on
//     the commit channel, push it onto the tail, and return its hash.
//  4. On write failure, rebuild the Merkle tree from the on-disk store
//     and return the error — the tail is not advanced.

package kura

import (
	"fmt"
	"sync"

	"github.com/irohad/irohad-core/pkg/block"
	"github.com/irohad/irohad-core/pkg/crypto"
	"github.com/irohad/irohad-core/pkg/kvdb"
	"github.com/irohad/irohad-core/pkg/merkle"
	"github.com/irohad/irohad-core/pkg/telemetry"
)

// Mode is the validation mode a Kura is constructed with; it is fixed
// for the Kura's lifetime. Init and Store do not consult it: in both
// modes Init accepts the stored blocks without re-validating them, and
// Store updates the auxiliary index synchronously before it returns.
type Mode int

const (
	// ModeStrict is the default mode ("strict" in configuration).
	ModeStrict Mode = iota
	// ModeFast is selected by "fast" in configuration.
	ModeFast
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Kura owns the in-memory tail, the on-disk block store, and the
// derived Merkle tree over committed block hashes.
type Kura struct {
	mode  Mode
	store *BlockStore
	index *kvdb.KVAdapter
	tel   *telemetry.Telemetry

	mu     sync.Mutex
	busy   bool
	tail   []block.ValidBlock
	tree   *merkle.Tree
	commit chan block.CommittedBlock
}

// New constructs a Kura rooted at store, indexing into index, in mode.
// tel may be nil, in which case a fresh Telemetry is used: its metrics
// go to a registry no caller holds, and it logs to standard error.
func New(mode Mode, store *BlockStore, index *kvdb.KVAdapter, tel *telemetry.Telemetry) *Kura {
	if tel == nil {
		tel = telemetry.New()
	}
	return &Kura{
		mode:   mode,
		store:  store,
		index:  index,
		tel:    tel,
		tree:   merkle.Build(nil),
		commit: make(chan block.CommittedBlock, 64),
	}
}

// Commits returns the channel on which CommittedBlock values are
// emitted as Store succeeds. Callers that never drain it do not block
// Store, up to the channel's buffer.
func (k *Kura) Commits() <-chan block.CommittedBlock {
	return k.commit
}

// Init loads every block already present in the store, in ascending
// height order, and rebuilds the in-memory tail and Merkle tree from
// them.
func (k *Kura) Init() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	blocks := k.store.ReadAll()
	k.tail = blocks
	k.rebuildTree()

	for _, b := range blocks {
		if err := k.indexHeight(b.Header.Height, b.Hash()); err != nil {
			return fmt.Errorf("kura: index height %d during init: %w", b.Header.Height, err)
		}
	}

	k.tel.KuraTailLength.Set(float64(len(k.tail)))
	k.tel.Log.WithField("tail_length", len(k.tail)).Info("kura: init complete")
	return nil
}

// Store persists b, re-stamping its height and previous-block hash when
// the tail is non-empty. Genesis blocks (an empty tail) must already be
// chained at height 0 with a zero previous hash.
func (k *Kura) Store(b block.ValidBlock) (crypto.Hash, error) {
	k.mu.Lock()
	if k.busy {
		k.mu.Unlock()
		return crypto.Hash{}, ErrNotReentrant
	}
	k.busy = true
	k.mu.Unlock()

	defer func() {
		k.mu.Lock()
		k.busy = false
		k.mu.Unlock()
	}()

	k.mu.Lock()
	var last *block.ValidBlock
	if len(k.tail) > 0 {
		last = &k.tail[len(k.tail)-1]
	}
	k.mu.Unlock()

	if last != nil {
		b.Header.Height = last.Header.Height + 1
		b.Header.PreviousBlockHash = last.Hash()
	} else if b.Header.Height != 0 || b.Header.PreviousBlockHash != (crypto.Hash{}) {
		return crypto.Hash{}, ErrGenesisNotChained
	}

	written, err := k.store.Write(b)
	if err != nil {
		onDisk := k.store.ReadAll()
		k.mu.Lock()
		k.tree = merkle.Build(leafHashes(onDisk))
		k.mu.Unlock()
		k.tel.Log.WithError(err).WithField("height", b.Header.Height).Error("kura: store write failed")
		return crypto.Hash{}, err
	}

	hash := written.Hash()
	if err := k.indexHeight(written.Header.Height, hash); err != nil {
		k.tel.Log.WithError(err).WithField("height", written.Header.Height).Warn("kura: index update failed")
	}

	k.mu.Lock()
	k.tail = append(k.tail, written)
	k.rebuildTree()
	tailLen := len(k.tail)
	k.mu.Unlock()

	k.tel.BlocksCommitted.Inc()
	k.tel.KuraTailLength.Set(float64(tailLen))
	k.tel.Log.WithField("height", written.Header.Height).Info("kura: block committed")

	committed := written.Commit()
	k.commit <- committed

	return hash, nil
}

// Tail returns a snapshot of the in-memory tail, oldest first.
func (k *Kura) Tail() []block.ValidBlock {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]block.ValidBlock, len(k.tail))
	copy(out, k.tail)
	return out
}

// Height returns the height of the last committed block and whether
// any block has been committed yet.
func (k *Kura) Height() (uint64, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.tail) == 0 {
		return 0, false
	}
	return k.tail[len(k.tail)-1].Header.Height, true
}

// Root returns the current Merkle root over all committed block
// hashes.
func (k *Kura) Root() crypto.Hash {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.tree.Root()
}

func (k *Kura) rebuildTree() {
	k.tree = merkle.Build(leafHashes(k.tail))
}

func (k *Kura) indexHeight(height uint64, hash crypto.Hash) error {
	if k.index == nil {
		return nil
	}
	return k.index.Set(heightKey(height), hash[:])
}

func leafHashes(blocks []block.ValidBlock) []crypto.Hash {
	hashes := make([]crypto.Hash, len(blocks))
	for i, b := range blocks {
		hashes[i] = b.Hash()
	}
	return hashes
}

func heightKey(height uint64) []byte {
	return []byte(fmt.Sprintf("height:%d", height))
}
