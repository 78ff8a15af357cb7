// Copyright 2025 Irohad Authors
//
// Signature creation and verification. Dispatches on the signing key
// pair's digest function the way the original crypto crate dispatches on
// the parsed Algorithm, but onto Go's ed25519 and decred's secp256k1
// rather than ursa.

package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature binds a public key to a signature over some payload.
type Signature struct {
	PublicKey    PublicKey
	SignatureRaw []byte
}

// NewSignature signs payload with keyPair.PrivateKey, selecting the
// algorithm from keyPair.PublicKey.DigestFunction.
func NewSignature(keyPair KeyPair, payload []byte) (Signature, error) {
	algo := keyPair.PublicKey.DigestFunction
	switch algo {
	case Ed25519:
		if len(keyPair.PrivateKey.Payload) != ed25519.PrivateKeySize {
			return Signature{}, fmt.Errorf("crypto: invalid ed25519 private key size %d", len(keyPair.PrivateKey.Payload))
		}
		sig := ed25519.Sign(ed25519.PrivateKey(keyPair.PrivateKey.Payload), payload)
		return Signature{PublicKey: keyPair.PublicKey, SignatureRaw: sig}, nil
	case Secp256k1:
		priv := secp256k1.PrivKeyFromBytes(keyPair.PrivateKey.Payload)
		digest := sha256.Sum256(payload)
		sig := ecdsa.Sign(priv, digest[:])
		return Signature{PublicKey: keyPair.PublicKey, SignatureRaw: sig.Serialize()}, nil
	default:
		return Signature{}, fmt.Errorf("crypto: unsupported digest function %q", algo)
	}
}

// Verify reports success iff the signature is authentic for message under
// s.PublicKey. Any backend error or a false verdict is returned as an
// error — there is no boolean "maybe" outcome.
func (s Signature) Verify(message []byte) error {
	switch s.PublicKey.DigestFunction {
	case Ed25519:
		pub := s.PublicKey.Bytes()
		if len(pub) != ed25519.PublicKeySize {
			return fmt.Errorf("crypto: invalid ed25519 public key size %d", len(pub))
		}
		if !ed25519.Verify(ed25519.PublicKey(pub), message, s.SignatureRaw) {
			return fmt.Errorf("crypto: signature did not pass verification")
		}
		return nil
	case Secp256k1:
		pub, err := secp256k1.ParsePubKey(s.PublicKey.Bytes())
		if err != nil {
			return fmt.Errorf("crypto: parse secp256k1 public key: %w", err)
		}
		sig, err := ecdsa.ParseDERSignature(s.SignatureRaw)
		if err != nil {
			return fmt.Errorf("crypto: parse secp256k1 signature: %w", err)
		}
		digest := sha256.Sum256(message)
		if !sig.Verify(digest[:], pub) {
			return fmt.Errorf("crypto: signature did not pass verification")
		}
		return nil
	default:
		return fmt.Errorf("crypto: unsupported digest function %q", s.PublicKey.DigestFunction)
	}
}

// Equal reports whether two signatures carry the same public key and
// signature bytes.
func (s Signature) Equal(other Signature) bool {
	if s.PublicKey != other.PublicKey {
		return false
	}
	if len(s.SignatureRaw) != len(other.SignatureRaw) {
		return false
	}
	for i := range s.SignatureRaw {
		if s.SignatureRaw[i] != other.SignatureRaw[i] {
			return false
		}
	}
	return true
}
