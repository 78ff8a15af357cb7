package crypto

import "testing"

func TestSumDeterministic(t *testing.T) {
	a := Sum([]byte("hello"))
	b := Sum([]byte("hello"))
	if a != b {
		t.Fatalf("Sum is not deterministic: %s != %s", a, b)
	}
}

func TestSumDistinguishesInputs(t *testing.T) {
	a := Sum([]byte("hello"))
	b := Sum([]byte("world"))
	if a == b {
		t.Fatalf("Sum collided on distinct inputs")
	}
}

func TestHashIsZero(t *testing.T) {
	var h Hash
	if !h.IsZero() {
		t.Fatalf("zero-value Hash should report IsZero")
	}
	if Sum([]byte("x")).IsZero() {
		t.Fatalf("non-zero hash reported IsZero")
	}
}

func TestHashStringRoundTripLength(t *testing.T) {
	h := Sum([]byte("payload"))
	s := h.String()
	if len(s) != HashLength*2 {
		t.Fatalf("expected hex string of length %d, got %d (%s)", HashLength*2, len(s), s)
	}
}

func TestSumPairOrderMatters(t *testing.T) {
	left := Sum([]byte("left"))
	right := Sum([]byte("right"))
	if SumPair(left, right) == SumPair(right, left) {
		t.Fatalf("SumPair should be order-sensitive")
	}
}
