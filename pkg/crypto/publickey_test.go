package crypto

import "testing"

func TestPublicKeyStringRoundTripEd25519(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	s := kp.PublicKey.String()
	parsed, err := PublicKeyFromString(s)
	if err != nil {
		t.Fatalf("PublicKeyFromString: %v", err)
	}
	if parsed != kp.PublicKey {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, kp.PublicKey)
	}
}

func TestPublicKeyStringRoundTripSecp256k1(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Secp256k1})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	s := kp.PublicKey.String()
	parsed, err := PublicKeyFromString(s)
	if err != nil {
		t.Fatalf("PublicKeyFromString: %v", err)
	}
	if parsed != kp.PublicKey {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed, kp.PublicKey)
	}
}

func TestMultihashDigestCodePrefix(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	mh, err := kp.PublicKey.Multihash()
	if err != nil {
		t.Fatalf("Multihash: %v", err)
	}
	if mh[0] != multihashEd25519Pub {
		t.Fatalf("expected digest code 0x%02x, got 0x%02x", multihashEd25519Pub, mh[0])
	}
	if int(mh[1]) != len(kp.PublicKey.Bytes()) {
		t.Fatalf("length byte %d does not match payload length %d", mh[1], len(kp.PublicKey.Bytes()))
	}
}

func TestPublicKeyFromMultihashRejectsTruncated(t *testing.T) {
	if _, err := PublicKeyFromMultihash([]byte{multihashEd25519Pub}); err == nil {
		t.Fatalf("expected error for truncated multihash")
	}
}

func TestPublicKeyFromMultihashRejectsUnknownCode(t *testing.T) {
	if _, err := PublicKeyFromMultihash([]byte{0x00, 0x00}); err == nil {
		t.Fatalf("expected error for unrecognized digest code")
	}
}

func TestPublicKeyFromStringRejectsBadHex(t *testing.T) {
	if _, err := PublicKeyFromString("not-hex-zz"); err == nil {
		t.Fatalf("expected error for malformed hex")
	}
}
