// Copyright 2025 Irohad Authors

package isi

import "errors"

// Sentinel errors returned by instruction execution. Every precondition
// failure resolves to one of these, wrapped with additional context via
// %w, rather than a bare string or a panic.
var (
	ErrNotFound           = errors.New("isi: entity not found")
	ErrAlreadyExists      = errors.New("isi: already contains an entity with this id")
	ErrPermissionDenied   = errors.New("isi: permission denied")
	ErrOverflow           = errors.New("isi: quantity overflow")
	ErrDefinitionMismatch = errors.New("isi: asset definition mismatch")
)
