// Copyright 2025 Irohad Authors
//
// Multihash wire encoding for public keys.
//
// Standard multihash (github.com/multiformats/go-multihash) varint-encodes
// the digest code and length, which for codes 0xed/0xe7 (> 127) expands to
// two bytes each. This wire format instead fixes both the code and the
// length at a single byte, so encoding is hand-packed rather than routed
// through the generic multihash library.

package crypto

import (
	"encoding/hex"
	"fmt"
)

const (
	multihashEd25519Pub   byte = 0xed
	multihashSecp256k1Pub byte = 0xe7
)

func digestCode(algo Algorithm) (byte, error) {
	switch algo {
	case Ed25519:
		return multihashEd25519Pub, nil
	case Secp256k1:
		return multihashSecp256k1Pub, nil
	default:
		return 0, fmt.Errorf("crypto: unsupported digest function %q", algo)
	}
}

func algorithmFromCode(code byte) (Algorithm, error) {
	switch code {
	case multihashEd25519Pub:
		return Ed25519, nil
	case multihashSecp256k1Pub:
		return Secp256k1, nil
	default:
		return "", fmt.Errorf("crypto: unrecognized multihash digest code 0x%02x", code)
	}
}

// Multihash encodes a public key as digest_code || length || payload.
func (p PublicKey) Multihash() ([]byte, error) {
	code, err := digestCode(p.DigestFunction)
	if err != nil {
		return nil, err
	}
	payload := p.Bytes()
	if len(payload) > 255 {
		return nil, fmt.Errorf("crypto: public key payload too long for single-byte length (%d bytes)", len(payload))
	}
	out := make([]byte, 0, 2+len(payload))
	out = append(out, code, byte(len(payload)))
	out = append(out, payload...)
	return out, nil
}

// String renders the public key as lower-case hex of its multihash
// representation.
func (p PublicKey) String() string {
	mh, err := p.Multihash()
	if err != nil {
		return fmt.Sprintf("<invalid public key: %v>", err)
	}
	return hex.EncodeToString(mh)
}

// PublicKeyFromMultihash decodes the digest_code || length || payload
// wire format.
func PublicKeyFromMultihash(data []byte) (PublicKey, error) {
	if len(data) < 2 {
		return PublicKey{}, fmt.Errorf("crypto: multihash too short (%d bytes)", len(data))
	}
	algo, err := algorithmFromCode(data[0])
	if err != nil {
		return PublicKey{}, err
	}
	length := int(data[1])
	if len(data) != 2+length {
		return PublicKey{}, fmt.Errorf("crypto: multihash length mismatch: header says %d, have %d", length, len(data)-2)
	}
	return PublicKey{DigestFunction: algo, Payload: string(data[2:])}, nil
}

// PublicKeyFromString parses the hex-encoded multihash representation
// produced by String, round-tripping with it.
func PublicKeyFromString(s string) (PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("crypto: decode public key hex: %w", err)
	}
	return PublicKeyFromMultihash(data)
}

// String renders the private key payload as a hex string.
func (k PrivateKey) String() string {
	return hex.EncodeToString(k.Payload)
}
