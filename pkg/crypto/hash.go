// Copyright 2025 Irohad Authors
//
// Hashing primitives used throughout the ledger: block hashes, Merkle
// leaves, and the content addressed by signatures.

package crypto

import (
	"golang.org/x/crypto/blake2b"
)

// HashLength is the size in bytes of every hash produced by Sum.
const HashLength = 32

// Hash is the fixed-size digest type used for block hashes and Merkle
// tree nodes.
type Hash [HashLength]byte

// IsZero reports whether h is the all-zero hash, the value genesis
// blocks use in place of a previous block hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Bytes returns a copy of the hash as a byte slice.
func (h Hash) Bytes() []byte {
	out := make([]byte, HashLength)
	copy(out, h[:])
	return out
}

func (h Hash) String() string {
	const hextable = "0123456789abcdef"
	out := make([]byte, 0, HashLength*2)
	for _, b := range h {
		out = append(out, hextable[b>>4], hextable[b&0x0f])
	}
	return string(out)
}

// Sum computes the 32-byte Blake2b digest of data.
func Sum(data []byte) Hash {
	return blake2b.Sum256(data)
}

// SumPair computes Sum(left || right), the combining step used when
// building a Merkle tree from leaf hashes.
func SumPair(left, right Hash) Hash {
	buf := make([]byte, 0, HashLength*2)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return Sum(buf)
}
