// Copyright 2025 Irohad Authors
//
// Binary Merkle tree over 32-byte hashes. Used both for the per-block
// transaction root stored in a block header and for Kura's commitment to
// the full chain of block hashes. Leaf = hash; internal = hash(left ||
// right); an odd trailing leaf at any level is promoted to the next
// level unchanged rather than duplicated against itself.

package merkle

import (
	"errors"
	"fmt"

	"github.com/irohad/irohad-core/pkg/crypto"
)

var (
	ErrEmptyTree    = errors.New("merkle: cannot build a tree from zero leaves")
	ErrLeafNotFound = errors.New("merkle: leaf not found in tree")
)

// Position indicates which side of a parent node a proof step's sibling
// occupies.
type Position int

const (
	Left Position = iota
	Right
)

// ProofStep is one step on the path from a leaf to the root. A step
// with IsPromotion true carries no sibling: the leaf being proved was an
// odd one out and was promoted to the parent level unchanged.
type ProofStep struct {
	Sibling     crypto.Hash
	Position    Position
	IsPromotion bool
}

// InclusionProof is the path from one leaf to the tree's root.
type InclusionProof struct {
	LeafIndex int
	Path      []ProofStep
}

// Tree is an immutable Merkle tree built once over a fixed leaf set.
type Tree struct {
	levels [][]crypto.Hash // levels[0] is the leaves, last level has exactly one element
}

// Build constructs a Tree over leaves in the given order. An empty
// input yields a Tree whose Root is the zero hash, matching a Kura with
// no blocks yet committed.
func Build(leaves []crypto.Hash) *Tree {
	if len(leaves) == 0 {
		return &Tree{levels: [][]crypto.Hash{{}}}
	}
	level := make([]crypto.Hash, len(leaves))
	copy(level, leaves)
	levels := [][]crypto.Hash{level}
	for len(level) > 1 {
		level = combineLevel(level)
		levels = append(levels, level)
	}
	return &Tree{levels: levels}
}

func combineLevel(level []crypto.Hash) []crypto.Hash {
	next := make([]crypto.Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, crypto.SumPair(level[i], level[i+1]))
		} else {
			// Odd trailing leaf: promote unchanged rather than
			// duplicating it against itself.
			next = append(next, level[i])
		}
	}
	return next
}

// Root returns the tree's root hash, the zero hash for an empty tree.
func (t *Tree) Root() crypto.Hash {
	top := t.levels[len(t.levels)-1]
	if len(top) == 0 {
		return crypto.Hash{}
	}
	return top[0]
}

// LeafCount reports how many leaves the tree was built from.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Leaf returns the leaf at index.
func (t *Tree) Leaf(index int) (crypto.Hash, error) {
	leaves := t.levels[0]
	if index < 0 || index >= len(leaves) {
		return crypto.Hash{}, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", index, len(leaves))
	}
	return leaves[index], nil
}

// Prove builds an InclusionProof for the leaf at index.
func (t *Tree) Prove(index int) (*InclusionProof, error) {
	leaves := t.levels[0]
	if index < 0 || index >= len(leaves) {
		return nil, fmt.Errorf("merkle: leaf index %d out of range [0, %d)", index, len(leaves))
	}
	proof := &InclusionProof{LeafIndex: index}
	current := index
	for level := 0; level < len(t.levels)-1; level++ {
		nodes := t.levels[level]
		var step ProofStep
		if current%2 == 0 {
			if current+1 < len(nodes) {
				step = ProofStep{Sibling: nodes[current+1], Position: Right}
			} else {
				step = ProofStep{IsPromotion: true}
			}
		} else {
			step = ProofStep{Sibling: nodes[current-1], Position: Left}
		}
		proof.Path = append(proof.Path, step)
		current = current / 2
	}
	return proof, nil
}

// ProveByHash finds leafHash among the tree's leaves and builds its
// inclusion proof.
func (t *Tree) ProveByHash(leafHash crypto.Hash) (*InclusionProof, error) {
	for i, leaf := range t.levels[0] {
		if leaf == leafHash {
			return t.Prove(i)
		}
	}
	return nil, ErrLeafNotFound
}

// VerifyProof recomputes the root implied by leafHash and proof, and
// reports whether it equals expectedRoot.
func VerifyProof(leafHash crypto.Hash, proof *InclusionProof, expectedRoot crypto.Hash) bool {
	current := leafHash
	for _, step := range proof.Path {
		switch {
		case step.IsPromotion:
			// current carries forward unchanged.
		case step.Position == Left:
			current = crypto.SumPair(step.Sibling, current)
		default:
			current = crypto.SumPair(current, step.Sibling)
		}
	}
	return current == expectedRoot
}
