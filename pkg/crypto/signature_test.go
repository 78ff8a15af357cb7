package crypto

import "testing"

func TestSignatureVerifyEd25519(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	payload := []byte("commit this block")
	sig, err := NewSignature(kp, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if err := sig.Verify(payload); err != nil {
		t.Fatalf("Verify on matching payload: %v", err)
	}
	if err := sig.Verify([]byte("a different payload")); err == nil {
		t.Fatalf("expected Verify to fail on mutated payload")
	}
}

func TestSignatureVerifySecp256k1(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Secp256k1})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	payload := []byte("commit this block")
	sig, err := NewSignature(kp, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if err := sig.Verify(payload); err != nil {
		t.Fatalf("Verify on matching payload: %v", err)
	}
	if err := sig.Verify([]byte("a different payload")); err == nil {
		t.Fatalf("expected Verify to fail on mutated payload")
	}
}

func TestSignatureVerifyWrongKeyFails(t *testing.T) {
	signer, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	impostor, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	payload := []byte("commit this block")
	sig, err := NewSignature(signer, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	sig.PublicKey = impostor.PublicKey
	if err := sig.Verify(payload); err == nil {
		t.Fatalf("expected Verify to fail when public key does not match signer")
	}
}

func TestSignatureEqual(t *testing.T) {
	kp, err := GenerateKeyPairWith(KeyGenConfiguration{Algorithm: Ed25519})
	if err != nil {
		t.Fatalf("GenerateKeyPairWith: %v", err)
	}
	payload := []byte("payload")
	a, err := NewSignature(kp, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	b, err := NewSignature(kp, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("deterministic ed25519 signatures over the same payload should be equal")
	}
}
