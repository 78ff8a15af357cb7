// Copyright 2025 Irohad Authors
//
// A small SCALE-like binary codec: fixed-width integers, length-prefixed
// byte strings, and length-prefixed lists. There is no schema library in
// this corpus that matches the spec's exact wire shapes (fixed
// single-byte multihash codes, a header hashed independently of the
// transaction/signature lists), so the encoder is hand-rolled rather
// than routed through a generic serialization package.

package block

import (
	"encoding/binary"
	"fmt"
)

type writer struct {
	buf []byte
}

func (w *writer) u64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *writer) byte(v byte) {
	w.buf = append(w.buf, v)
}

func (w *writer) raw(b []byte) {
	w.buf = append(w.buf, b...)
}

// bytes writes a uint32-length-prefixed byte string.
func (w *writer) bytes(b []byte) {
	w.u32(uint32(len(b)))
	w.raw(b)
}

// str writes a uint16-length-prefixed UTF-8 string, sufficient for the
// short identifier names used throughout the domain model.
func (w *writer) str(s string) {
	w.u16(uint16(len(s)))
	w.raw([]byte(s))
}

type reader struct {
	buf []byte
	pos int
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

func (r *reader) need(n int) error {
	if r.pos+n > len(r.buf) {
		return fmt.Errorf("block: codec: need %d bytes, have %d remaining", n, len(r.buf)-r.pos)
	}
	return nil
}

func (r *reader) u64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) raw(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

func (r *reader) bytes() ([]byte, error) {
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	return r.raw(int(n))
}

func (r *reader) str() (string, error) {
	n, err := r.u16()
	if err != nil {
		return "", err
	}
	b, err := r.raw(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}
