// Copyright 2025 Irohad Authors

package block

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/irohad/irohad-core/pkg/crypto"
	"github.com/irohad/irohad-core/pkg/domain"
	"github.com/irohad/irohad-core/pkg/isi"
)

// Transaction is a list of instructions authored and signed by a single
// account. Instructions within a transaction apply in list order; if any
// fails, the whole transaction's effects are discarded.
type Transaction struct {
	ID              uuid.UUID
	Authority       domain.AccountID
	Instructions    []isi.Instruction
	CreatedAtUnixMs uint64
	Signatures      crypto.Signatures
}

// NewTransaction builds a Transaction with a fresh random ID, mirroring
// the batch identifiers the node assigns on submission.
func NewTransaction(authority domain.AccountID, instructions []isi.Instruction, createdAtUnixMs uint64) Transaction {
	return Transaction{
		ID:              uuid.New(),
		Authority:       authority,
		Instructions:    instructions,
		CreatedAtUnixMs: createdAtUnixMs,
	}
}

func encodeTransaction(w *writer, tx Transaction) error {
	id := tx.ID
	w.raw(id[:])
	writeAccountID(w, tx.Authority)
	w.u64(tx.CreatedAtUnixMs)
	w.u32(uint32(len(tx.Instructions)))
	for _, instr := range tx.Instructions {
		if err := encodeInstruction(w, instr); err != nil {
			return err
		}
	}
	sigs := tx.Signatures.Values()
	w.u32(uint32(len(sigs)))
	for _, sig := range sigs {
		if err := encodeSignature(w, sig); err != nil {
			return err
		}
	}
	return nil
}

func decodeTransaction(r *reader) (Transaction, error) {
	idBytes, err := r.raw(16)
	if err != nil {
		return Transaction{}, fmt.Errorf("block: codec: transaction id: %w", err)
	}
	id, err := uuid.FromBytes(idBytes)
	if err != nil {
		return Transaction{}, fmt.Errorf("block: codec: transaction id: %w", err)
	}
	authority, err := readAccountID(r)
	if err != nil {
		return Transaction{}, err
	}
	createdAt, err := r.u64()
	if err != nil {
		return Transaction{}, err
	}
	instrCount, err := r.u32()
	if err != nil {
		return Transaction{}, err
	}
	instructions := make([]isi.Instruction, 0, instrCount)
	for i := uint32(0); i < instrCount; i++ {
		instr, err := decodeInstruction(r)
		if err != nil {
			return Transaction{}, fmt.Errorf("block: codec: instruction %d: %w", i, err)
		}
		instructions = append(instructions, instr)
	}

	sigCount, err := r.u32()
	if err != nil {
		return Transaction{}, err
	}
	var sigs crypto.Signatures
	for i := uint32(0); i < sigCount; i++ {
		sig, err := decodeSignature(r)
		if err != nil {
			return Transaction{}, fmt.Errorf("block: codec: signature %d: %w", i, err)
		}
		sigs.Add(sig)
	}

	return Transaction{
		ID:              id,
		Authority:       authority,
		Instructions:    instructions,
		CreatedAtUnixMs: createdAt,
		Signatures:      sigs,
	}, nil
}

func encodeSignature(w *writer, sig crypto.Signature) error {
	mh, err := sig.PublicKey.Multihash()
	if err != nil {
		return fmt.Errorf("block: codec: encode signature public key: %w", err)
	}
	w.bytes(mh)
	w.bytes(sig.SignatureRaw)
	return nil
}

func decodeSignature(r *reader) (crypto.Signature, error) {
	mh, err := r.bytes()
	if err != nil {
		return crypto.Signature{}, err
	}
	pub, err := crypto.PublicKeyFromMultihash(mh)
	if err != nil {
		return crypto.Signature{}, fmt.Errorf("block: codec: decode signature public key: %w", err)
	}
	raw, err := r.bytes()
	if err != nil {
		return crypto.Signature{}, err
	}
	return crypto.Signature{PublicKey: pub, SignatureRaw: raw}, nil
}
