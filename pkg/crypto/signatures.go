// Copyright 2025 Irohad Authors
//
// Signatures aggregates the set of signatures collected for a block or
// transaction, keyed by signer so that a later signature from the same
// key replaces rather than duplicates an earlier one.

package crypto

// Signatures is an unordered, deduplicated-by-signer set of Signature
// values. The zero value is ready to use.
type Signatures struct {
	bySigner map[PublicKey]Signature
}

// NewSignatures builds a Signatures set from an initial slice.
func NewSignatures(initial []Signature) Signatures {
	s := Signatures{}
	for _, sig := range initial {
		s.Add(sig)
	}
	return s
}

// Add inserts sig, replacing any existing signature from the same
// public key.
func (s *Signatures) Add(sig Signature) {
	if s.bySigner == nil {
		s.bySigner = make(map[PublicKey]Signature)
	}
	s.bySigner[sig.PublicKey] = sig
}

// Append is an alias for Add, matching the original crate's naming.
func (s *Signatures) Append(sig Signature) {
	s.Add(sig)
}

// Contains reports whether a signature from key is present.
func (s Signatures) Contains(key PublicKey) bool {
	_, ok := s.bySigner[key]
	return ok
}

// Clear removes every signature.
func (s *Signatures) Clear() {
	s.bySigner = nil
}

// Len reports the number of distinct signers.
func (s Signatures) Len() int {
	return len(s.bySigner)
}

// Values returns every signature in the set, in no particular order.
func (s Signatures) Values() []Signature {
	out := make([]Signature, 0, len(s.bySigner))
	for _, sig := range s.bySigner {
		out = append(out, sig)
	}
	return out
}

// Verified returns the subset of signatures that verify against payload.
// Signatures that fail verification are silently dropped, not returned
// as an error, since a quorum check only cares which signers are valid.
func (s Signatures) Verified(payload []byte) []Signature {
	out := make([]Signature, 0, len(s.bySigner))
	for _, sig := range s.bySigner {
		if sig.Verify(payload) == nil {
			out = append(out, sig)
		}
	}
	return out
}
