// Copyright 2025 Irohad Authors
//
// BlockStore owns the on-disk, one-file-per-height block log. Write is
// all-or-nothing (write to a temporary file, then rename); read_all treats the directory as
// a prefix log and stops at the first height that is missing or fails
// to decode.

package kura

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/irohad/irohad-core/pkg/block"
)

// BlockStore persists one file per block height under a directory.
type BlockStore struct {
	dir string
}

// NewBlockStore returns a BlockStore rooted at dir, creating it if
// absent.
func NewBlockStore(dir string) (*BlockStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kura: create block store directory %s: %w", dir, err)
	}
	return &BlockStore{dir: dir}, nil
}

func (s *BlockStore) pathFor(height uint64) string {
	return filepath.Join(s.dir, strconv.FormatUint(height, 10))
}

// Write serializes block and writes it to the file named by its height.
// The file's length equals the encoded block length exactly — there is
// no header, checksum, or length prefix at the file level.
func (s *BlockStore) Write(b block.ValidBlock) (block.ValidBlock, error) {
	encoded := b.Encode()
	path := s.pathFor(b.Header.Height)
	// Write to a temporary file and rename it into place, so the file at
	// path is either absent or complete.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o644); err != nil {
		os.Remove(tmp)
		return block.ValidBlock{}, fmt.Errorf("kura: write block file %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return block.ValidBlock{}, fmt.Errorf("kura: write block file %s: %w", path, err)
	}
	return b, nil
}

// Read opens the file at height, reads exactly its byte length, and
// decodes it. A missing file surfaces as a plain os.IsNotExist error so
// ReadAll can distinguish "no more blocks" from a decode failure.
func (s *BlockStore) Read(height uint64) (block.ValidBlock, error) {
	path := s.pathFor(height)
	data, err := os.ReadFile(path)
	if err != nil {
		return block.ValidBlock{}, err
	}
	decoded, err := block.Decode(data)
	if err != nil {
		return block.ValidBlock{}, fmt.Errorf("%w at height %d: %v", ErrCorrupt, height, err)
	}
	return decoded, nil
}

// ReadAll reads sequentially starting at height 0 and stops at the
// first height that is missing or fails to decode, returning the
// blocks read so far. The store is treated as a prefix: a hole or a
// corrupt tail both end the scan rather than aborting the process.
func (s *BlockStore) ReadAll() []block.ValidBlock {
	var blocks []block.ValidBlock
	for height := uint64(0); ; height++ {
		b, err := s.Read(height)
		if err != nil {
			break
		}
		blocks = append(blocks, b)
	}
	return blocks
}
