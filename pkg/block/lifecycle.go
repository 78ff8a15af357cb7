// Copyright 2025 Irohad Authors
//
// The block lifecycle: PendingBlock -> ChainedBlock -> SignedBlock ->
// ValidBlock -> CommittedBlock. Each stage is a distinct Go type, so an
// out-of-order transition (e.g. signing a block that was never chained)
// is a compile error rather than a runtime check.

package block

import (
	"fmt"

	"github.com/irohad/irohad-core/pkg/crypto"
	"github.com/irohad/irohad-core/pkg/isi"
	"github.com/irohad/irohad-core/pkg/merkle"
	"github.com/irohad/irohad-core/pkg/telemetry"
	"github.com/irohad/irohad-core/pkg/wsv"
)

// Header is the portion of a block that determines its hash. Signatures
// are deliberately excluded so that collecting additional endorsements
// never perturbs the block's identity.
type Header struct {
	Height            uint64
	TimestampUnixMs   uint64
	PreviousBlockHash crypto.Hash
	MerkleRoot        crypto.Hash
}

func (h Header) encode() []byte {
	w := &writer{}
	w.u64(h.Height)
	w.u64(h.TimestampUnixMs)
	w.raw(h.PreviousBlockHash[:])
	w.raw(h.MerkleRoot[:])
	return w.buf
}

func decodeHeader(r *reader) (Header, error) {
	height, err := r.u64()
	if err != nil {
		return Header{}, err
	}
	ts, err := r.u64()
	if err != nil {
		return Header{}, err
	}
	prevBytes, err := r.raw(crypto.HashLength)
	if err != nil {
		return Header{}, err
	}
	rootBytes, err := r.raw(crypto.HashLength)
	if err != nil {
		return Header{}, err
	}
	var h Header
	h.Height = height
	h.TimestampUnixMs = ts
	copy(h.PreviousBlockHash[:], prevBytes)
	copy(h.MerkleRoot[:], rootBytes)
	return h, nil
}

// Hash is blake2b-256 over the encoded header only, per the wire format:
// signatures never perturb a block's hash.
func (h Header) Hash() crypto.Hash {
	return crypto.Sum(h.encode())
}

// PendingBlock accepts transactions and has not yet been assigned a
// position in the chain.
type PendingBlock struct {
	Transactions []Transaction
}

// NewPendingBlock constructs a PendingBlock over transactions.
func NewPendingBlock(transactions []Transaction) PendingBlock {
	return PendingBlock{Transactions: transactions}
}

func (p PendingBlock) merkleRoot() crypto.Hash {
	leaves := make([]crypto.Hash, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		w := &writer{}
		if err := encodeTransaction(w, tx); err != nil {
			// Encoding a transaction only fails for a malformed
			// instruction type, which cannot occur for values produced
			// by package isi; transactions reaching this point are
			// already well-typed.
			panic(fmt.Sprintf("block: unencodable transaction: %v", err))
		}
		leaves = append(leaves, crypto.Sum(w.buf))
	}
	return merkle.Build(leaves).Root()
}

// ChainFirst chains p as the genesis block: height 0, zero previous
// hash.
func (p PendingBlock) ChainFirst(timestampUnixMs uint64) ChainedBlock {
	return ChainedBlock{
		Header: Header{
			Height:            0,
			TimestampUnixMs:   timestampUnixMs,
			PreviousBlockHash: crypto.Hash{},
			MerkleRoot:        p.merkleRoot(),
		},
		Transactions: p.Transactions,
	}
}

// Chain chains p at height with the given previous block hash.
func (p PendingBlock) Chain(height uint64, previousBlockHash crypto.Hash, timestampUnixMs uint64) ChainedBlock {
	return ChainedBlock{
		Header: Header{
			Height:            height,
			TimestampUnixMs:   timestampUnixMs,
			PreviousBlockHash: previousBlockHash,
			MerkleRoot:        p.merkleRoot(),
		},
		Transactions: p.Transactions,
	}
}

// ChainedBlock has its height and previous-hash slots filled but no
// authority signature yet.
type ChainedBlock struct {
	Header       Header
	Transactions []Transaction
}

// Sign attaches the first authority signature over the block's header
// hash, producing a SignedBlock.
func (c ChainedBlock) Sign(keyPair crypto.KeyPair) (SignedBlock, error) {
	hash := c.Header.Hash()
	sig, err := crypto.NewSignature(keyPair, hash[:])
	if err != nil {
		return SignedBlock{}, fmt.Errorf("block: sign: %w", err)
	}
	var sigs crypto.Signatures
	sigs.Add(sig)
	return SignedBlock{Header: c.Header, Transactions: c.Transactions, Signatures: sigs}, nil
}

// SignedBlock carries at least one authority signature but has not yet
// passed stateful/stateless validation.
type SignedBlock struct {
	Header       Header
	Transactions []Transaction
	Signatures   crypto.Signatures
}

// AddSignature appends an additional endorsement, as consensus collects
// a quorum of signatures before validation.
func (s SignedBlock) AddSignature(keyPair crypto.KeyPair) (SignedBlock, error) {
	hash := s.Header.Hash()
	sig, err := crypto.NewSignature(keyPair, hash[:])
	if err != nil {
		return SignedBlock{}, fmt.Errorf("block: sign: %w", err)
	}
	s.Signatures.Add(sig)
	return s, nil
}

// Validate checks that at least one signature verifies against the
// block hash (stateless) and re-applies every transaction's
// instructions to view to confirm the block is internally consistent
// (stateful). It does not install the result back into view — Kura's
// caller is responsible for swapping in the WSV mutations once the
// block also commits. tel may be nil, in which case a throwaway
// Telemetry records the boundary without reaching any caller's
// registry.
func (s SignedBlock) Validate(view *wsv.WorldStateView, tel *telemetry.Telemetry) (ValidBlock, error) {
	if tel == nil {
		tel = telemetry.New()
	}

	hash := s.Header.Hash()
	if len(s.Signatures.Verified(hash[:])) == 0 {
		tel.SignaturesVerified.WithLabelValues("rejected").Inc()
		tel.Log.WithField("height", s.Header.Height).Warn("block: validate: no signature verifies against the block hash")
		return ValidBlock{}, fmt.Errorf("block: validate: no signature verifies against the block hash")
	}
	tel.SignaturesVerified.WithLabelValues("verified").Inc()

	current := view
	for txIdx, tx := range s.Transactions {
		next := current
		for instrIdx, instr := range tx.Instructions {
			applied, err := isi.Dispatch(instr, tx.Authority, next, tel)
			if err != nil {
				return ValidBlock{}, fmt.Errorf("block: validate: transaction %d instruction %d: %w", txIdx, instrIdx, err)
			}
			next = applied
		}
		current = next
	}

	return ValidBlock{Header: s.Header, Transactions: s.Transactions, Signatures: s.Signatures}, nil
}

// ValidBlock has passed stateful and stateless checks and is suitable
// for Kura to persist.
type ValidBlock struct {
	Header       Header
	Transactions []Transaction
	Signatures   crypto.Signatures
}

// Hash returns the block's identity hash.
func (v ValidBlock) Hash() crypto.Hash {
	return v.Header.Hash()
}

// Commit finalizes v into a CommittedBlock, the form broadcast to WSV
// appliers downstream of Kura.
func (v ValidBlock) Commit() CommittedBlock {
	return CommittedBlock{Header: v.Header, Transactions: v.Transactions, Signatures: v.Signatures}
}

// Encode serializes v as header || length-prefixed transaction list ||
// length-prefixed signature list, the exact byte sequence written to
// its block store file.
func (v ValidBlock) Encode() []byte {
	w := &writer{}
	w.raw(v.Header.encode())
	w.u32(uint32(len(v.Transactions)))
	for _, tx := range v.Transactions {
		// Each transaction is itself length-prefixed so Decode can skip
		// or bound-check individual entries without re-scanning.
		txw := &writer{}
		if err := encodeTransaction(txw, tx); err != nil {
			panic(fmt.Sprintf("block: unencodable transaction: %v", err))
		}
		w.bytes(txw.buf)
	}
	sigs := v.Signatures.Values()
	w.u32(uint32(len(sigs)))
	for _, sig := range sigs {
		if err := encodeSignature(w, sig); err != nil {
			panic(fmt.Sprintf("block: unencodable signature: %v", err))
		}
	}
	return w.buf
}

// Decode parses the byte sequence produced by Encode.
func Decode(data []byte) (ValidBlock, error) {
	r := newReader(data)
	header, err := decodeHeader(r)
	if err != nil {
		return ValidBlock{}, fmt.Errorf("block: decode header: %w", err)
	}

	txCount, err := r.u32()
	if err != nil {
		return ValidBlock{}, fmt.Errorf("block: decode transaction count: %w", err)
	}
	transactions := make([]Transaction, 0, txCount)
	for i := uint32(0); i < txCount; i++ {
		txBytes, err := r.bytes()
		if err != nil {
			return ValidBlock{}, fmt.Errorf("block: decode transaction %d: %w", i, err)
		}
		tx, err := decodeTransaction(newReader(txBytes))
		if err != nil {
			return ValidBlock{}, fmt.Errorf("block: decode transaction %d body: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	sigCount, err := r.u32()
	if err != nil {
		return ValidBlock{}, fmt.Errorf("block: decode signature count: %w", err)
	}
	var sigs crypto.Signatures
	for i := uint32(0); i < sigCount; i++ {
		sig, err := decodeSignature(r)
		if err != nil {
			return ValidBlock{}, fmt.Errorf("block: decode signature %d: %w", i, err)
		}
		sigs.Add(sig)
	}

	return ValidBlock{Header: header, Transactions: transactions, Signatures: sigs}, nil
}

// CommittedBlock has had its WSV mutations applied and is broadcast
// downstream.
type CommittedBlock struct {
	Header       Header
	Transactions []Transaction
	Signatures   crypto.Signatures
}

// Hash returns the block's identity hash, unchanged from its ValidBlock
// stage.
func (c CommittedBlock) Hash() crypto.Hash {
	return c.Header.Hash()
}
