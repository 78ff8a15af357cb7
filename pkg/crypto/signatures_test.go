package crypto

import "testing"

func mustKeyPair(t *testing.T) KeyPair {
	t.Helper()
	kp, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return kp
}

func TestSignaturesAddReplacesBySigner(t *testing.T) {
	kp := mustKeyPair(t)
	var set Signatures

	first, err := NewSignature(kp, []byte("payload one"))
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	set.Add(first)

	second, err := NewSignature(kp, []byte("payload two"))
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	set.Add(second)

	if set.Len() != 1 {
		t.Fatalf("expected one entry after re-adding same signer, got %d", set.Len())
	}
	values := set.Values()
	if len(values) != 1 || !values[0].Equal(second) {
		t.Fatalf("expected the later signature to win, got %+v", values)
	}
}

func TestSignaturesContainsAndClear(t *testing.T) {
	kp := mustKeyPair(t)
	var set Signatures
	sig, err := NewSignature(kp, []byte("payload"))
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	set.Append(sig)
	if !set.Contains(kp.PublicKey) {
		t.Fatalf("expected Contains to report true after Append")
	}
	set.Clear()
	if set.Contains(kp.PublicKey) || set.Len() != 0 {
		t.Fatalf("expected empty set after Clear")
	}
}

func TestSignaturesVerifiedFiltersInvalid(t *testing.T) {
	good := mustKeyPair(t)
	bad := mustKeyPair(t)
	payload := []byte("block payload")

	goodSig, err := NewSignature(good, payload)
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}
	// badSig is signed over a different payload, so it must fail
	// verification against the shared payload below.
	badSig, err := NewSignature(bad, []byte("some other payload"))
	if err != nil {
		t.Fatalf("NewSignature: %v", err)
	}

	set := NewSignatures([]Signature{goodSig, badSig})
	verified := set.Verified(payload)
	if len(verified) != 1 || !verified[0].Equal(goodSig) {
		t.Fatalf("expected only the valid signature to survive, got %d", len(verified))
	}
}
