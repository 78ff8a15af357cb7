package kvdb

import (
	"testing"

	dbm "github.com/cometbft/cometbft-db"
)

func newMemAdapter(t *testing.T) *KVAdapter {
	t.Helper()
	db := dbm.NewMemDB()
	return NewKVAdapter(db)
}

func TestAdapterSetGet(t *testing.T) {
	a := newMemAdapter(t)
	if err := a.Set([]byte("height:5"), []byte("hash-bytes")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := a.Get([]byte("height:5"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(v) != "hash-bytes" {
		t.Fatalf("expected %q, got %q", "hash-bytes", v)
	}
}

func TestAdapterGetMissingReturnsNil(t *testing.T) {
	a := newMemAdapter(t)
	v, err := a.Get([]byte("absent"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil for a missing key, got %v", v)
	}
}

func TestAdapterHasAndDelete(t *testing.T) {
	a := newMemAdapter(t)
	key := []byte("height:1")
	if err := a.Set(key, []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	has, err := a.Has(key)
	if err != nil || !has {
		t.Fatalf("expected Has to report true, err=%v", err)
	}
	if err := a.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	has, err = a.Has(key)
	if err != nil || has {
		t.Fatalf("expected Has to report false after delete, err=%v", err)
	}
}

func TestNilDBIsSafe(t *testing.T) {
	a := NewKVAdapter(nil)
	if v, err := a.Get([]byte("x")); err != nil || v != nil {
		t.Fatalf("expected nil, nil for a nil-backed adapter, got %v, %v", v, err)
	}
	if err := a.Set([]byte("x"), []byte("y")); err != nil {
		t.Fatalf("expected Set on nil db to be a no-op, got %v", err)
	}
}
